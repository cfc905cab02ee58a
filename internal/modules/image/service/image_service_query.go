package service

import (
	"strings"

	moduledto "github.com/Dishalex/PhotoShare/internal/modules/image/dto"
	"github.com/Dishalex/PhotoShare/internal/modules/image/repo"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"
)

const maxSearchLimit = 100

// SearchImages filters by description substring and exact tag, newest first, and attaches
// the average rating, tag names and comments of every hit.
func (s *Service) SearchImages(keyword, tag string, offset, limit int) (*moduledto.ImagesByFilter, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	images, err := s.imageStore.Search(repo.SearchParams{
		Keyword: strings.TrimSpace(keyword),
		Tag:     utils.NormalizeTagName(strings.TrimPrefix(strings.TrimSpace(tag), "#")),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, platformservice.WrapInternalError("search images failed", err)
	}

	ids := make([]uint, 0, len(images))
	for _, image := range images {
		ids = append(ids, image.ID)
	}
	tagNames, err := s.imageStore.TagNamesByImageIDs(ids)
	if err != nil {
		return nil, platformservice.WrapInternalError("load tags failed", err)
	}
	averages, err := s.imageStore.AverageRatingsByImageIDs(ids)
	if err != nil {
		return nil, platformservice.WrapInternalError("load ratings failed", err)
	}
	comments, err := s.imageStore.CommentsByImageIDs(ids)
	if err != nil {
		return nil, platformservice.WrapInternalError("load comments failed", err)
	}

	result := &moduledto.ImagesByFilter{Images: make([]moduledto.ImageProfile, 0, len(images))}
	for _, image := range images {
		profile := moduledto.ImageProfile{
			ID:          image.ID,
			URL:         image.URL,
			Description: image.Description,
			Tags:        tagNames[image.ID],
			Comments:    comments[image.ID],
		}
		if avg, ok := averages[image.ID]; ok {
			avg := avg
			profile.AverageRating = &avg
		}
		if profile.Tags == nil {
			profile.Tags = []string{}
		}
		if profile.Comments == nil {
			profile.Comments = []repo.CommentByUser{}
		}
		result.Images = append(result.Images, profile)
	}
	return result, nil
}
