package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestEmployeeWireFieldNames(t *testing.T) {
	table := "5"
	e := Employee{
		ID:               1,
		Name:             "Dilnoza",
		Phone:            "+998901112233",
		Image:            "https://cdn.example/staff/1.jpg",
		Position:         "waiter",
		Salary:           "4500000",
		DateHired:        time.Now(),
		Description:      "evening shift",
		WorkingHour:      "14:00-22:00",
		TableAssigned:    &table,
		Status:           "active",
		ReasonForLeaving: "",
	}

	m := marshalKeys(t, e.ToResponse())
	for _, key := range []string{
		"_id", "name", "phone", "image", "position", "salary",
		"dateHired", "description", "workingHour", "tableAssigned",
		"status", "reasonForLeaving",
	} {
		assert.Contains(t, m, key)
	}
	// Internal snake_case names must never leak
	assert.NotContains(t, m, "date_hired")
	assert.NotContains(t, m, "working_hour")
	assert.NotContains(t, m, "table_assigned")
	assert.NotContains(t, m, "reason_for_leaving")
	assert.NotContains(t, m, "id")
}

func TestMenuWireFieldNames(t *testing.T) {
	menu := Menu{ID: 2, Name: "Plov", Price: 45000, OutOfStock: true, CategoryID: 7}

	m := marshalKeys(t, menu.ToResponse())
	for _, key := range []string{
		"_id", "name", "ingredients", "price", "image",
		"available", "outOfStock", "badge", "category_id",
	} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "out_of_stock")
	assert.Equal(t, true, m["outOfStock"])
	assert.Equal(t, float64(45000), m["price"])
	// category_id keeps its internal spelling on the wire
	assert.Equal(t, float64(7), m["category_id"])
}

func TestCategoryWireFieldNames(t *testing.T) {
	c := Category{ID: 3, Name: "Salads"}

	m := marshalKeys(t, c.ToResponse())
	assert.Contains(t, m, "_id")
	assert.Contains(t, m, "name")
	assert.NotContains(t, m, "id")
	assert.Equal(t, float64(3), m["_id"])
}

func TestCommentWireFieldNames(t *testing.T) {
	c := Comment{ID: 4, Name: "Olim", Phone: "+998933334455", Comment: "great plov", Anonymous: false}

	m := marshalKeys(t, c.ToResponse())
	for _, key := range []string{"_id", "name", "phone", "comment", "anonymous"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "id")
}

func TestRatingWireFieldNames(t *testing.T) {
	r := Rating{ID: 5, MenuID: 2, Stars: 4}

	m := marshalKeys(t, r.ToResponse())
	for _, key := range []string{"_id", "menu_id", "stars"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "id")
}

func TestUserNeverSerializesPasswordHash(t *testing.T) {
	u := User{ID: 6, Name: "Alisher", Phone: "+998901234567", PasswordHash: "$2a$10$secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}
