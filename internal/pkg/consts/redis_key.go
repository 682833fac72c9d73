package consts

const (
	UserInterestKey      = "user:interest:"
	UserInterestDirtyKey = "user:interest:dirty"
)

const (
	UserInterestInitLock = "lock:interest:init:"
)
