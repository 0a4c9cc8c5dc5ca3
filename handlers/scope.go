package handlers

import (
	"MedCenter/middlewares"
	"MedCenter/models"
	"MedCenter/services"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// callerScope resolves the country restriction for the authenticated caller.
// Admins operate unscoped across every country; doctors and operators are
// confined to the country reached through their profile's city chain.
func callerScope(c *gin.Context, profiles *services.ProfileService) (*uint, *models.Profile, error) {
	ctx := c.Request.Context()
	role, err := middlewares.ExtractUserRoleFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	userIDStr, err := middlewares.ExtractUserIDFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	profile, err := profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if role == "Admin" {
		return nil, profile, nil
	}
	if profile == nil {
		return nil, nil, errors.New("no profile attached to user")
	}
	countryID, err := profiles.ResolveCountryID(ctx, profile.ID)
	if err != nil {
		return nil, nil, err
	}
	return &countryID, profile, nil
}

// statusForError maps validation failures to 400 and everything else to 500.
func statusForError(err error) int {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return 400
	}
	return 500
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return uint(value), true
}
