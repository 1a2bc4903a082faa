package util

import (
	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/dao/model"
)

const (
	UserIDKey      = "x-user-id"
	EmailKey       = "x-user-email"
	RoleKey        = "x-user-role"
	WorkspaceIDKey = "x-workspace-id"
)

func SetJWTContext(
	c *gin.Context,
	msg JWTMessage,
) {
	c.Set(UserIDKey, msg.UserID)
	c.Set(EmailKey, msg.Email)
	c.Set(RoleKey, msg.Role)
	c.Set(WorkspaceIDKey, msg.WorkspaceID)
}

func GetToken(ctx *gin.Context) JWTMessage {
	var msg JWTMessage
	msg.UserID = ctx.GetString(UserIDKey)
	msg.Email = ctx.GetString(EmailKey)
	msg.WorkspaceID = ctx.GetString(WorkspaceIDKey)

	if role, ok := ctx.Get(RoleKey); ok {
		msg.Role, _ = role.(model.Role)
	}
	return msg
}
