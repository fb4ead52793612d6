package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountUC "github.com/khoahotran/devconnector/internal/application/usecase/account"
	profileUC "github.com/khoahotran/devconnector/internal/application/usecase/profile"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase       *profileUC.ProfileUseCase
	deleteAccountUseCase *accountUC.DeleteAccountUseCase
	logger               logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, deleteUC *accountUC.DeleteAccountUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:       uc,
		deleteAccountUseCase: deleteUC,
		logger:               log,
	}
}

// GetMyProfile handles GET /api/profile/me.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	views, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTOs(views))
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	userID, err := parseID(c, "user_id", "no profile")
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteGetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpsertProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), profileUC.UpsertProfileInput{
		UserID:         userID,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         req.social(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

// DeleteAccount handles DELETE /api/profile: the profile and the user go together.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Msg: "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ExperienceRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		c.Error(err)
		return
	}
	to, err := parseOptionalDate("to", req.To)
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), profileUC.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	expID, err := parseID(c, "exp_id", "experience not found")
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteDeleteExperience(c.Request.Context(), profileUC.DeleteEntryInput{
		UserID:  userID,
		EntryID: expID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req EducationRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		c.Error(err)
		return
	}
	to, err := parseOptionalDate("to", req.To)
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), profileUC.AddEducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	eduID, err := parseID(c, "edu_id", "education not found")
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.ExecuteDeleteEducation(c.Request.Context(), profileUC.DeleteEntryInput{
		UserID:  userID,
		EntryID: eduID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(view))
}
