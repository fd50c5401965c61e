package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidSelection    = errors.New("invalid board or class selection")
	ErrNoClassSelected     = errors.New("no class selected yet")
	ErrBoardNotFound       = errors.New("board not found")
	ErrClassNotFound       = errors.New("class not found")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrChapterNotFound     = errors.New("chapter not found")
	ErrContentNotFound     = errors.New("content not found")
	ErrMalformedSubmission = errors.New("submitted answers do not match the question set")
)
