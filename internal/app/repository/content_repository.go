package repository

import (
	"context"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

type PageRepository interface {
	List(ctx context.Context) []model.Page
	FindByID(ctx context.Context, id string) (*model.Page, error)
	FindBySlug(ctx context.Context, slug string) (*model.Page, error)
	Create(ctx context.Context, page model.Page) error
	Update(ctx context.Context, page model.Page) error
	Delete(ctx context.Context, id string) error
}

type PostRepository interface {
	List(ctx context.Context) []model.BlogPost
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, post model.BlogPost) error
	Update(ctx context.Context, post model.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type pageRepository struct {
	store kvstore.Store
	mu    sync.RWMutex
	pages []model.Page
}

func NewPageRepository(ctx context.Context, store kvstore.Store) PageRepository {
	pages := loadList(ctx, store, KeyPages, model.DefaultPages())
	logger.Info("Page repository loaded", map[string]interface{}{
		"count": len(pages),
	})
	return &pageRepository{store: store, pages: pages}
}

func (r *pageRepository) List(_ context.Context) []model.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Page, len(r.pages))
	copy(out, r.pages)
	return out
}

func (r *pageRepository) FindByID(_ context.Context, id string) (*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pages {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *pageRepository) FindBySlug(_ context.Context, slug string) (*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pages {
		if p.Slug == slug {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *pageRepository) Create(ctx context.Context, page model.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pages = append(r.pages, page)
	persist(ctx, r.store, KeyPages, r.pages)
	return nil
}

func (r *pageRepository) Update(ctx context.Context, page model.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.pages {
		if p.ID == page.ID {
			r.pages[i] = page
			persist(ctx, r.store, KeyPages, r.pages)
			return nil
		}
	}
	return ErrNotFound
}

func (r *pageRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.pages {
		if p.ID == id {
			r.pages = append(r.pages[:i], r.pages[i+1:]...)
			persist(ctx, r.store, KeyPages, r.pages)
			return nil
		}
	}
	return ErrNotFound
}

type postRepository struct {
	store kvstore.Store
	mu    sync.RWMutex
	posts []model.BlogPost
}

func NewPostRepository(ctx context.Context, store kvstore.Store) PostRepository {
	posts := loadList(ctx, store, KeyPosts, model.DefaultBlogPosts())
	logger.Info("Blog post repository loaded", map[string]interface{}{
		"count": len(posts),
	})
	return &postRepository{store: store, posts: posts}
}

func (r *postRepository) List(_ context.Context) []model.BlogPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BlogPost, len(r.posts))
	copy(out, r.posts)
	return out
}

func (r *postRepository) FindByID(_ context.Context, id string) (*model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *postRepository) FindBySlug(_ context.Context, slug string) (*model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.Slug == slug {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *postRepository) Create(ctx context.Context, post model.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, post)
	persist(ctx, r.store, KeyPosts, r.posts)
	return nil
}

func (r *postRepository) Update(ctx context.Context, post model.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == post.ID {
			r.posts[i] = post
			persist(ctx, r.store, KeyPosts, r.posts)
			return nil
		}
	}
	return ErrNotFound
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			persist(ctx, r.store, KeyPosts, r.posts)
			return nil
		}
	}
	return ErrNotFound
}
