package domain

// WorkRequest is one compilation request received from the build system,
// framed as a JSON object on the worker's stdin.
type WorkRequest struct {
	Arguments []string    `json:"arguments"`
	Inputs    []WorkInput `json:"inputs,omitempty"`
	RequestID int32       `json:"requestId"`
}

// WorkInput describes an input file the build system tracked for the
// request. The worker does not act on these; they are carried so that the
// request round-trips faithfully.
type WorkInput struct {
	Path   string `json:"path"`
	Digest string `json:"digest,omitempty"`
}

// WorkResponse is the worker's answer to one WorkRequest, framed as a JSON
// object on stdout.
type WorkResponse struct {
	ExitCode  int32  `json:"exitCode"`
	Output    string `json:"output,omitempty"`
	RequestID int32  `json:"requestId"`
}
