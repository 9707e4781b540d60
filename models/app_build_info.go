package models

// AppBuildInfo describes the running server build, exposed via the version
// endpoint so that clients can log what they are talking to.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
