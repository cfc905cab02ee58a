package service

import (
	"runtime"

	moduledto "github.com/Dishalex/PhotoShare/internal/modules/system/dto"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

// AdminGetServerStats returns row totals and runtime info for the admin dashboard.
func (s *Service) AdminGetServerStats(actor policy.Actor) (*moduledto.ServerStatsResponse, error) {
	if !policy.Can(actor, policy.SettingsManage, 0) {
		return nil, platformservice.NewForbiddenError("operation not permitted")
	}
	counts, err := s.systemStore.Counts()
	if err != nil {
		return nil, platformservice.WrapInternalError("failed to collect statistics", err)
	}

	return &moduledto.ServerStatsResponse{
		UserCount:    counts.Users,
		ImageCount:   counts.Images,
		TagCount:     counts.Tags,
		CommentCount: counts.Comments,
		RatingCount:  counts.Ratings,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
