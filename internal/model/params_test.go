package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"TRUE"`, true},
		{`"nope"`, false},
	}
	for _, tc := range cases {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(tc.in), &b), tc.in)
		assert.Equal(t, tc.want, bool(b), tc.in)
	}

	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`12`), &b))
}

func TestFlexInt(t *testing.T) {
	var i FlexInt
	require.NoError(t, json.Unmarshal([]byte(`7`), &i))
	assert.Equal(t, 7, int(i))

	require.NoError(t, json.Unmarshal([]byte(`"42"`), &i))
	assert.Equal(t, 42, int(i))

	require.NoError(t, json.Unmarshal([]byte(`""`), &i))
	assert.Equal(t, 0, int(i))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &i))
}

func TestFlexFloat(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`45000.5`), &f))
	assert.Equal(t, 45000.5, float64(f))

	require.NoError(t, json.Unmarshal([]byte(`"12.50"`), &f))
	assert.Equal(t, 12.5, float64(f))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}

func TestUpdateMenuRequest_CamelCaseWins(t *testing.T) {
	var req UpdateMenuRequest
	// When both spellings arrive, the external camelCase name wins
	require.NoError(t, json.Unmarshal([]byte(`{"outOfStock": true, "out_of_stock": false}`), &req))
	v := req.OutOfStockValue()
	require.NotNil(t, v)
	assert.True(t, *v)

	var snakeOnly UpdateMenuRequest
	require.NoError(t, json.Unmarshal([]byte(`{"out_of_stock": "true"}`), &snakeOnly))
	v = snakeOnly.OutOfStockValue()
	require.NotNil(t, v)
	assert.True(t, *v)

	var absent UpdateMenuRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Nil(t, absent.OutOfStockValue())
}

func TestCreateMenuRequest_CategoryFallback(t *testing.T) {
	var req CreateMenuRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category_id": 3, "category": 9}`), &req))
	assert.Equal(t, 3, req.CategoryValue())

	var legacy CreateMenuRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category": "9"}`), &legacy))
	assert.Equal(t, 9, legacy.CategoryValue())
}

func TestEmployeeRequest_KeyPairs(t *testing.T) {
	var req EmployeeRequest
	payload := `{"workingHour": "9-18", "working_hour": "10-19", "table_assigned": "4"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "9-18", req.WorkingHourValue())
	require.NotNil(t, req.TableAssignedValue())
	assert.Equal(t, "4", *req.TableAssignedValue())
}
