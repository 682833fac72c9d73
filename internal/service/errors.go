package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("invalid parameters")
	ErrUserNotFound    = errors.New("user not found")
	ErrDropNotFound    = errors.New("drop not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrDropRateLimited = errors.New("posting limit reached")
	ErrActionDuplicate = errors.New("duplicate action")
	ErrFollowExist     = errors.New("already following")
	ErrFollowSelf      = errors.New("cannot follow yourself")
	UnauthorizedError  = errors.New("permission denied")
	UnExpectedError    = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrUserNotFound:    NotFound,
	ErrDropNotFound:    NotFound,
	ErrCommentNotFound: NotFound,
	ErrDropRateLimited: TooManyRequests,
	ErrActionDuplicate: BadRequest,
	ErrFollowExist:     BadRequest,
	ErrFollowSelf:      BadRequest,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
