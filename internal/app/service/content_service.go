package service

import (
	"context"
	"errors"
	"time"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrPostNotFound = errors.New("blog post not found")
)

// ContentService manages static pages and blog posts
type ContentService interface {
	ListPages(ctx context.Context) []model.Page
	GetPageBySlug(ctx context.Context, slug string) (*model.Page, error)
	CreatePage(ctx context.Context, page model.Page) (*model.Page, error)
	UpdatePage(ctx context.Context, page model.Page) (*model.Page, error)
	DeletePage(ctx context.Context, id string) error

	ListPosts(ctx context.Context) []model.BlogPost
	GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	CreatePost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	UpdatePost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

type contentService struct {
	pageRepo repository.PageRepository
	postRepo repository.PostRepository
}

func NewContentService(pageRepo repository.PageRepository, postRepo repository.PostRepository) ContentService {
	return &contentService{pageRepo: pageRepo, postRepo: postRepo}
}

func (s *contentService) ListPages(ctx context.Context) []model.Page {
	return s.pageRepo.List(ctx)
}

func (s *contentService) GetPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *contentService) CreatePage(ctx context.Context, page model.Page) (*model.Page, error) {
	logger.Info("Creating page", map[string]interface{}{
		"title": page.Title,
	})

	page.ID = util.NewID("page")
	if page.Slug == "" {
		page.Slug = util.Slugify(page.Title)
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		logger.Error("Failed to create page", err, map[string]interface{}{
			"title": page.Title,
		})
		return nil, err
	}
	return &page, nil
}

func (s *contentService) UpdatePage(ctx context.Context, page model.Page) (*model.Page, error) {
	if page.Slug == "" {
		page.Slug = util.Slugify(page.Title)
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (s *contentService) DeletePage(ctx context.Context, id string) error {
	logger.Info("Deleting page", map[string]interface{}{
		"page_id": id,
	})

	if err := s.pageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPageNotFound
		}
		return err
	}
	return nil
}

func (s *contentService) ListPosts(ctx context.Context) []model.BlogPost {
	return s.postRepo.List(ctx)
}

func (s *contentService) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *contentService) CreatePost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	logger.Info("Creating blog post", map[string]interface{}{
		"title": post.Title,
	})

	post.ID = util.NewID("post")
	if post.Slug == "" {
		post.Slug = util.Slugify(post.Title)
	}
	if post.Date == "" {
		post.Date = time.Now().UTC().Format("2006-01-02")
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		logger.Error("Failed to create blog post", err, map[string]interface{}{
			"title": post.Title,
		})
		return nil, err
	}
	return &post, nil
}

func (s *contentService) UpdatePost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = util.Slugify(post.Title)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *contentService) DeletePost(ctx context.Context, id string) error {
	logger.Info("Deleting blog post", map[string]interface{}{
		"post_id": id,
	})

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
