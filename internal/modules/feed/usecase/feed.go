package usecase

import (
	"context"

	"nextround/internal/modules/feed/domain"
	"nextround/internal/modules/feed/dto"
	feedin "nextround/internal/modules/feed/port/in"
	"nextround/internal/modules/feed/service"
	"nextround/internal/platform/avatar"
	"nextround/internal/platform/catalog"
)

type Interactor struct {
	svc *service.FeedService
}

func NewInteractor(svc *service.FeedService) feedin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) (dto.PageOutput, error) {
	number := input.Page
	if number == 0 {
		number = 1
	}
	golfer := ""
	if input.Golfer != "" {
		found, _, err := i.svc.FindGolfer(ctx, input.Golfer)
		if err != nil {
			return dto.PageOutput{}, err
		}
		golfer = found.Name
	}
	page, err := i.svc.List(ctx, number, golfer)
	if err != nil {
		return dto.PageOutput{}, err
	}
	out := dto.PageOutput{Page: page.Number, HasMore: page.HasMore, Golfer: golfer, Posts: make([]dto.PostOutput, 0, len(page.Items))}
	for _, item := range page.Items {
		out.Posts = append(out.Posts, toPostOutput(item))
	}
	return out, nil
}

func (i *Interactor) ToggleLike(ctx context.Context, postID int) (dto.LikeOutput, error) {
	item, err := i.svc.ToggleLike(ctx, postID)
	if err != nil {
		return dto.LikeOutput{}, err
	}
	return dto.LikeOutput{PostID: item.Post.ID, Liked: item.Liked, Likes: item.DisplayLikes()}, nil
}

func (i *Interactor) FindGolfer(ctx context.Context, name string) (dto.GolferOutput, error) {
	golfer, distance, err := i.svc.FindGolfer(ctx, name)
	if err != nil {
		return dto.GolferOutput{}, err
	}
	return dto.GolferOutput{Name: golfer.Name, Handicap: golfer.Handicap, Distance: distance}, nil
}

func toPostOutput(item domain.Item) dto.PostOutput {
	p := item.Post
	return dto.PostOutput{
		ID:             p.ID,
		GolferName:     p.Golfer.Name,
		GolferHandicap: p.Golfer.Handicap,
		Initials:       avatar.Initials(p.Golfer.Name),
		Score:          p.Score,
		Tips:           append([]string(nil), p.Tips...),
		Date:           p.Date.Format(catalog.DateLayout),
		Likes:          item.DisplayLikes(),
		Liked:          item.Liked,
		Comments:       p.Comments,
		Rating:         p.Rating,
	}
}
