package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"suja/internal/delivery/http/middleware"
	"suja/internal/delivery/http/response"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for feed and like handlers.
type FeedHandler struct {
	feedUC       usecase.FeedUsecase
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(
	feedUC usecase.FeedUsecase,
	engagementUC usecase.EngagementUsecase,
	logger *slog.Logger,
) *FeedHandler {
	return &FeedHandler{
		feedUC:       feedUC,
		engagementUC: engagementUC,
		logger:       logger,
	}
}

// List returns one feed page. Anonymous viewers get the page without liked
// annotations.
func (h *FeedHandler) List(c echo.Context) error {
	input := &usecase.ListFeedInput{}

	if pageParam := c.QueryParam("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "page must be a non-negative integer")
		}
		input.Page = page
	}

	if userParam := c.QueryParam("userId"); userParam != "" {
		authorID, err := uuid.Parse(userParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "userId must be a UUID")
		}
		input.AuthorID = &authorID
	}

	if identity := middleware.CurrentIdentity(c); identity != nil {
		input.Viewer = &identity.ID
	}

	views, err := h.feedUC.ListFeed(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Feed page retrieved")
}

// Create publishes a new post for the signed-in profile.
func (h *FeedHandler) Create(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.CurrentIdentity(c)

	post, err := h.feedUC.CreatePost(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created")
}

// Delete removes one of the caller's own posts.
func (h *FeedHandler) Delete(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "post id must be a UUID")
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.feedUC.DeletePost(c.Request().Context(), postID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted")
}

// likeInput is the desired like state for a post.
type likeInput struct {
	Liked bool `json:"liked"`
}

// Like applies the caller's liked state to a post. Repeating a state is a
// no-op, matching the optimistic toggle on the client.
func (h *FeedHandler) Like(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "post id must be a UUID")
	}

	var input likeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.engagementUC.SetLike(c.Request().Context(), identity.ID, postID, input.Liked); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": input.Liked}, "Like state applied")
}
