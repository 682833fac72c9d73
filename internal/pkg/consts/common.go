package consts

const (
	DefaultAvatarURL = "default_avatar.png"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)
