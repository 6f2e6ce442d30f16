package services

import (
	"context"

	"content-hub/cmd/api/dto"
	"content-hub/cmd/internal/content"
	"content-hub/filter"
)

// CatalogService builds the filtered list responses for episodes and articles.
//
// - gw: CMS가 내려가 있으면 fallback dataset을 돌려주므로 목록 조회는 실패하지 않는다.
type CatalogService struct {
	gw *content.Gateway
}

func NewCatalogService(gw *content.Gateway) *CatalogService {
	return &CatalogService{gw: gw}
}

func (s *CatalogService) ListEpisodes(ctx context.Context, controls filter.Controls) dto.EpisodeListDTO {
	all := s.gw.Episodes(ctx)
	res := filter.Apply(all, controls)
	return dto.EpisodeListDTO{
		Items:   res.Items,
		Count:   res.Count,
		Summary: res.Summary("episode"),
		Filter:  dto.NewFilterDTO(controls),
		Topics:  dto.TopicOptions(all),
	}
}

func (s *CatalogService) ListArticles(ctx context.Context, controls filter.Controls) dto.ArticleListDTO {
	all := s.gw.Articles(ctx)
	res := filter.Apply(all, controls)
	return dto.ArticleListDTO{
		Items:   res.Items,
		Count:   res.Count,
		Summary: res.Summary("article"),
		Filter:  dto.NewFilterDTO(controls),
		Topics:  dto.TopicOptions(all),
	}
}
