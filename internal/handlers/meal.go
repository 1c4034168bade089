package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMealForm     = "food_id and quantity_g must be positive numbers"
	errMealNotFound = "meal not found"
)

type mealForm struct {
	FoodID    int64   `form:"food_id" binding:"required"`
	QuantityG float64 `form:"quantity_g" binding:"required"`
	EatenAt   string  `form:"eaten_at"`
}

func (h *Handler) mealPage(c *gin.Context) {
	h.renderMeal(c, http.StatusOK, "")
}

func (h *Handler) logMeal(c *gin.Context) {
	s, _ := currentSession(c)

	var form mealForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Infow("meal_bad_request_body", "user_id", s.UserID, "err", err)
		h.renderMeal(c, http.StatusBadRequest, errMealForm)
		return
	}

	id, err := h.services.LogMeal(c.Request.Context(), s.UserID, service.MealInput{
		FoodID:    form.FoodID,
		QuantityG: form.QuantityG,
		EatenAt:   form.EatenAt,
	})
	if err != nil {
		if service.KindOf(err) == service.KindValidation {
			h.logFailure(http.StatusBadRequest, "meal_log_failed", err, "user_id", s.UserID)
			h.renderMeal(c, http.StatusBadRequest, service.PublicMessage(err))
			return
		}
		h.renderError(c, "meal_log_failed", err, "user_id", s.UserID)
		return
	}

	h.log.Debugw("meal_logged", "user_id", s.UserID, "meal_id", id)
	c.Redirect(http.StatusFound, "/reports")
}

// renderMeal shows the meal form with the food catalog.
func (h *Handler) renderMeal(c *gin.Context, status int, msg string) {
	foods, err := h.services.ListFoods(c.Request.Context())
	if err != nil {
		h.renderError(c, "meal_list_foods_failed", err)
		return
	}
	h.render(c, status, "meal.tmpl", gin.H{
		"Title": "Log a meal",
		"Foods": foods,
		"Error": msg,
	})
}

// deleteMeal removes one of the session user's meals. Ids the user does not
// own are ignored; malformed ids are 404.
func (h *Handler) deleteMeal(c *gin.Context) {
	s, _ := currentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.logFailure(http.StatusNotFound, "meal_delete_bad_id", errors.New(errMealNotFound), "id", c.Param("id"))
		h.renderErrorPage(c, http.StatusNotFound, errMealNotFound)
		return
	}

	if err := h.services.DeleteMeal(c.Request.Context(), s.UserID, id); err != nil {
		h.renderError(c, "meal_delete_failed", err, "user_id", s.UserID, "meal_id", id)
		return
	}

	c.Redirect(http.StatusFound, "/reports")
}
