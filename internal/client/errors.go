package client

import "errors"

var (
	ErrNoFile           = errors.New("no file selected")
	ErrFileLoading      = errors.New("selected file is still being read")
	ErrBusy             = errors.New("a submission is already in flight")
	ErrNoEvents         = errors.New("no events to export")
	ErrIndexOutOfRange  = errors.New("event index out of range")
	ErrUnknownField     = errors.New("unknown event field")
	ErrSubmissionFailed = errors.New("submission failed")
)

// Messages shown to the user.
const (
	MsgSelectFile   = "Please select a file"
	MsgFileLoading  = "The file is still loading, try again in a moment"
	MsgNoEvents     = "There are no events to export"
	MsgUnknownError = "An unknown error occurred"
)
