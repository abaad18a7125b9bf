package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IForumController interface {
	RegisterRoutes(r fiber.Router)
	CreatePost(ctx *fiber.Ctx) error
	UpdatePost(ctx *fiber.Ctx) error
	DeletePost(ctx *fiber.Ctx) error
	ShowPost(ctx *fiber.Ctx) error
	ListPosts(ctx *fiber.Ctx) error
	CreateComment(ctx *fiber.Ctx) error
	UpdateComment(ctx *fiber.Ctx) error
	DeleteComment(ctx *fiber.Ctx) error
	ListComments(ctx *fiber.Ctx) error
}

type forumController struct {
	forumService service.IForumService
}

func NewForumController(forumService service.IForumService) IForumController {
	return &forumController{
		forumService: forumService,
	}
}

func (c *forumController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/forum/v1")

	// Reading is public.
	h.Get("posts", c.ListPosts)
	h.Get("posts/:postId", c.ShowPost)
	h.Get("posts/:postId/comments", c.ListComments)

	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("posts", c.CreatePost)
	p.Put("posts/:postId", c.UpdatePost)
	p.Delete("posts/:postId", c.DeletePost)
	p.Post("posts/:postId/comments", c.CreateComment)
	p.Put("comments/:commentId", c.UpdateComment)
	p.Delete("comments/:commentId", c.DeleteComment)
}

func (c *forumController) CreatePost(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.forumService.CreatePost(ctx.Context(), principal, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Post created", res))
}

func (c *forumController) UpdatePost(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	postId, err := parseIdParam(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid post id"))
	}

	var req dto.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.forumService.UpdatePost(ctx.Context(), principal, postId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Post updated", res))
}

func (c *forumController) DeletePost(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	postId, err := parseIdParam(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid post id"))
	}

	if err := c.forumService.DeletePost(ctx.Context(), principal, postId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Post deleted", nil))
}

func (c *forumController) ShowPost(ctx *fiber.Ctx) error {
	postId, err := parseIdParam(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid post id"))
	}

	res, err := c.forumService.GetPost(ctx.Context(), postId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get post", res))
}

func (c *forumController) ListPosts(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	var authorId *uuid.UUID
	if raw := ctx.Query("author"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid author id"))
		}
		authorId = &id
	}

	res, err := c.forumService.ListPosts(ctx.Context(), authorId, limit, offset)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list posts", res))
}

func (c *forumController) CreateComment(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	postId, err := parseIdParam(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid post id"))
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.forumService.CreateComment(ctx.Context(), principal, postId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment created", res))
}

func (c *forumController) UpdateComment(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	commentId, err := parseIdParam(ctx, "commentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid comment id"))
	}

	var req dto.UpdateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.forumService.UpdateComment(ctx.Context(), principal, commentId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment updated", res))
}

func (c *forumController) DeleteComment(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	commentId, err := parseIdParam(ctx, "commentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid comment id"))
	}

	if err := c.forumService.DeleteComment(ctx.Context(), principal, commentId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment deleted", nil))
}

func (c *forumController) ListComments(ctx *fiber.Ctx) error {
	postId, err := parseIdParam(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid post id"))
	}
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.forumService.ListComments(ctx.Context(), postId, limit, offset)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list comments", res))
}
