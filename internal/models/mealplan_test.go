package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDay(t *testing.T) {
	for _, day := range DaysOfWeek {
		assert.True(t, IsValidDay(day), day)
	}
	assert.False(t, IsValidDay("monday"), "day names are case sensitive")
	assert.False(t, IsValidDay("Funday"))
	assert.False(t, IsValidDay(""))
}

func TestCreateMealPlanRequestValidate(t *testing.T) {
	ok := CreateMealPlanRequest{MealName: "Chicken Salad", DayOfWeek: "Monday"}
	assert.NoError(t, ok.Validate())

	shortName := CreateMealPlanRequest{MealName: "A", DayOfWeek: "Monday"}
	assert.Error(t, shortName.Validate())

	badDay := CreateMealPlanRequest{MealName: "Chicken Salad", DayOfWeek: "Someday"}
	assert.Error(t, badDay.Validate())
}
