package api

import (
	"errors"
	"net/http"

	reqdto "clubvenue/internal/handler/dto/request"
	resdto "clubvenue/internal/handler/dto/response"
	"clubvenue/internal/handler/httperr"
	"clubvenue/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	workflow usecase.DraftWorkflow
}

func NewDraftHandler(workflow usecase.DraftWorkflow) *DraftHandler {
	return &DraftHandler{workflow: workflow}
}

// Create opens a draft session. The catalog snapshot is loaded here; when the
// catalog is unreachable no session exists at all and editing cannot start.
func (h *DraftHandler) Create(c *gin.Context) {
	var req reqdto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	state, err := h.workflow.CreateDraft(c.Request.Context(), usecase.CreateDraftParams{
		EventType: req.EventType,
		ClubID:    req.ClubID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCatalogUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Catalog is unavailable, please try again later")
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid draft parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDraftState(state))
}

// Update applies a partial field change, recomputes the verdict and re-issues
// the conflict check for the changed window.
func (h *DraftHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID")
		return
	}

	var req reqdto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	state, err := h.workflow.UpdateDraft(c.Request.Context(), id, usecase.DraftChanges{
		EventName:       req.EventName,
		AttendeeBracket: req.AttendeeBracket,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AddVenues:       req.AddVenueIDs,
		RemoveVenues:    req.RemoveVenueIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found")
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid draft changes")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftState(state))
}

func (h *DraftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID")
		return
	}

	state, err := h.workflow.GetDraft(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDraftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftState(state))
}

func (h *DraftHandler) Submit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID")
		return
	}

	state, err := h.workflow.SubmitDraft(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found")
		case errors.Is(err, usecase.ErrNotSubmittable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Draft has blocking warnings and cannot be submitted")
		case errors.Is(err, usecase.ErrNoVenueSelected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select at least one venue before submitting")
		case errors.Is(err, usecase.ErrIncompleteDraft):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Fill in all required fields before submitting")
		case errors.Is(err, usecase.ErrSubmissionInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "Submission is already being processed")
		case errors.Is(err, usecase.ErrAlreadySubmitted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Draft has already been submitted")
		case errors.Is(err, usecase.ErrSubmissionRejected):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking was rejected, the draft remains editable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftState(state))
}
