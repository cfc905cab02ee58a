package service

import (
	"context"
	"errors"

	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/user/dto"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"

	"gorm.io/gorm"
)

// AdminSetRole changes the role of another user.
func (s *Service) AdminSetRole(actor policy.Actor, userID uint, role model.Role) (*moduledto.UserProfileResponse, error) {
	if !policy.Can(actor, policy.UserManage, 0) {
		return nil, platformservice.NewForbiddenError("operation not permitted")
	}
	if !role.Valid() {
		return nil, platformservice.NewValidationError("unknown role")
	}
	if actor.ID == userID {
		return nil, platformservice.NewValidationError("cannot change your own role")
	}

	if err := s.userStore.UpdateRole(userID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("user not found")
		}
		return nil, platformservice.WrapInternalError("update role failed", err)
	}
	return s.GetProfile(userID)
}

// AdminDeleteUser removes a user and, through the cascades, everything they own. Remote
// assets are removed after the rows are gone; failures there are only logged.
func (s *Service) AdminDeleteUser(ctx context.Context, actor policy.Actor, userID uint) error {
	if !policy.Can(actor, policy.UserManage, 0) {
		return platformservice.NewForbiddenError("operation not permitted")
	}
	if actor.ID == userID {
		return platformservice.NewValidationError("cannot delete yourself")
	}

	publicIDs, err := s.userStore.ListImagePublicIDs(userID)
	if err != nil {
		return platformservice.WrapInternalError("list user images failed", err)
	}

	if err := s.userStore.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("user not found")
		}
		return platformservice.WrapInternalError("delete user failed", err)
	}

	for _, publicID := range publicIDs {
		if err := s.host.Delete(ctx, publicID); err != nil {
			logging.Warn().Err(err).Str("public_id", publicID).Uint("user_id", userID).
				Msg("failed to delete remote asset of removed user")
		}
	}
	return nil
}
