// Package policy decides who may act on which resource. Handlers and services never compare
// roles directly.
package policy

import "github.com/Dishalex/PhotoShare/internal/model"

type Actor struct {
	ID   uint
	Role model.Role
}

type Action string

const (
	ImageRead      Action = "image.read"
	ImageUpdate    Action = "image.update"
	ImageDelete    Action = "image.delete"
	ImageTransform Action = "image.transform"
	ImageTag       Action = "image.tag"
	CommentUpdate  Action = "comment.update"
	CommentDelete  Action = "comment.delete"
	RatingUpdate   Action = "rating.update"
	RatingDelete   Action = "rating.delete"
	TagManage      Action = "tag.manage"
	UserManage     Action = "user.manage"
	SettingsManage Action = "settings.manage"
)

type rule struct {
	owner bool
	roles []model.Role
}

var rules = map[Action]rule{
	ImageRead:      {owner: true, roles: []model.Role{model.RoleAdmin}},
	ImageDelete:    {owner: true, roles: []model.Role{model.RoleAdmin}},
	ImageUpdate:    {owner: true},
	ImageTransform: {owner: true},
	ImageTag:       {owner: true},
	CommentUpdate:  {owner: true},
	CommentDelete:  {owner: true, roles: []model.Role{model.RoleModerator, model.RoleAdmin}},
	RatingUpdate:   {owner: true, roles: []model.Role{model.RoleModerator, model.RoleAdmin}},
	RatingDelete:   {owner: true, roles: []model.Role{model.RoleModerator, model.RoleAdmin}},
	TagManage:      {roles: []model.Role{model.RoleModerator, model.RoleAdmin}},
	UserManage:     {roles: []model.Role{model.RoleAdmin}},
	SettingsManage: {roles: []model.Role{model.RoleAdmin}},
}

// Can reports whether actor may perform action on a resource owned by ownerID. Pass 0 as
// ownerID for actions that have no owner. Unknown actions are denied.
func Can(actor Actor, action Action, ownerID uint) bool {
	r, ok := rules[action]
	if !ok || actor.ID == 0 {
		return false
	}
	if r.owner && ownerID != 0 && actor.ID == ownerID {
		return true
	}
	for _, role := range r.roles {
		if actor.Role == role {
			return true
		}
	}
	return false
}
