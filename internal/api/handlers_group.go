package api

import "Vynce/internal/api/handler"

// HandlersGroup collects the initialized handler instances.
type HandlersGroup struct {
	DropHandler       *handler.DropHandler
	DropActionHandler *handler.DropActionHandler
	UserFollowHandler *handler.UserFollowHandler
}
