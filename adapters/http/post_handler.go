package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	postUC "github.com/khoahotran/devconnector/internal/application/usecase/post"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type PostHandler struct {
	createPostUseCase *postUC.CreatePostUseCase
	listPostsUseCase  *postUC.ListPostsUseCase
	getPostUseCase    *postUC.GetPostUseCase
	deletePostUseCase *postUC.DeletePostUseCase
	likePostUseCase   *postUC.LikePostUseCase
	commentUseCase    *postUC.CommentUseCase
	logger            logger.Logger
}

func NewPostHandler(
	createUC *postUC.CreatePostUseCase,
	listUC *postUC.ListPostsUseCase,
	getUC *postUC.GetPostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	likeUC *postUC.LikePostUseCase,
	commentUC *postUC.CommentUseCase,
	log logger.Logger,
) *PostHandler {
	return &PostHandler{
		createPostUseCase: createUC,
		listPostsUseCase:  listUC,
		getPostUseCase:    getUC,
		deletePostUseCase: deleteUC,
		likePostUseCase:   likeUC,
		commentUseCase:    commentUC,
		logger:            log,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req TextRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	p, err := h.createPostUseCase.Execute(c.Request.Context(), postUC.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.listPostsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTOs(posts))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseID(c, "id", "post not found")
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.getPostUseCase.Execute(c.Request.Context(), postID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(p))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	postID, err := parseID(c, "id", "post not found")
	if err != nil {
		c.Error(err)
		return
	}

	err = h.deletePostUseCase.Execute(c.Request.Context(), postUC.DeletePostInput{
		PostID: postID,
		UserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: "post removed"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	input, err := likeInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	likes, err := h.likePostUseCase.Like(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToLikeDTOs(likes))
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	input, err := likeInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	likes, err := h.likePostUseCase.Unlike(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToLikeDTOs(likes))
}

func likeInput(c *gin.Context) (postUC.LikeInput, error) {
	userID, err := currentUser(c)
	if err != nil {
		return postUC.LikeInput{}, err
	}
	postID, err := parseID(c, "id", "post not found")
	if err != nil {
		return postUC.LikeInput{}, err
	}
	return postUC.LikeInput{PostID: postID, UserID: userID}, nil
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	postID, err := parseID(c, "id", "post not found")
	if err != nil {
		c.Error(err)
		return
	}

	var req TextRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	comments, err := h.commentUseCase.Add(c.Request.Context(), postUC.AddCommentInput{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCommentDTOs(comments))
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	postID, err := parseID(c, "post_id", "post not found")
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := parseID(c, "comment_id", "comment does not exist")
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.commentUseCase.Delete(c.Request.Context(), postUC.DeleteCommentInput{
		PostID:    postID,
		CommentID: commentID,
		UserID:    userID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCommentDTOs(comments))
}
