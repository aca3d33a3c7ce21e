package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRoundTrip(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	w := s.do(t, http.MethodPost, "/veiculos", token, models.VehicleRequest{Name: "Fusca", Brand: "VW", Year: 1975})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vehicle
	decodeJSON(t, w, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/veiculos/%d", created.ID), w.Header().Get("Location"))

	path := fmt.Sprintf("/veiculos/%d", created.ID)

	w = s.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Vehicle
	decodeJSON(t, w, &fetched)
	assert.Equal(t, models.Vehicle{ID: created.ID, Name: "Fusca", Brand: "VW", Year: 1975}, fetched)

	w = s.do(t, http.MethodPut, path, token, models.VehicleRequest{Name: "Fusca", Brand: "VW", Year: 1980})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &fetched)
	assert.Equal(t, 1980, fetched.Year)
	assert.Equal(t, created.ID, fetched.ID)

	w = s.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVehicle_EditorAllowed(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/veiculos", s.tokenFor(t, models.RoleEditor),
		models.VehicleRequest{Name: "Gol", Brand: "VW", Year: 1950})

	assert.Equal(t, http.StatusCreated, w.Code, "year 1950 is accepted")
}

func TestCreateVehicle_ValidationRejectsWithoutMutation(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	w := s.do(t, http.MethodPost, "/veiculos", token, models.VehicleRequest{Year: 1949})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var v models.ValidationErrors
	decodeJSON(t, w, &v)
	assert.Equal(t, []string{services.MsgNameRequired, services.MsgBrandRequired, services.MsgYearTooOld}, v.Messages)
	assert.Zero(t, s.vehicles.CallCount("Create"))
}

func TestCreateVehicle_OversizedFieldsRejectedBeforeStore(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "name longer than the column",
			body: fmt.Sprintf(`{"name":%q,"brand":"VW","year":1975}`, strings.Repeat("n", models.MaxVehicleNameLength+1)),
			want: []string{services.MsgNameTooLong},
		},
		{
			name: "brand longer than the column",
			body: fmt.Sprintf(`{"name":"Fusca","brand":%q,"year":1975}`, strings.Repeat("b", models.MaxVehicleBrandLength+1)),
			want: []string{services.MsgBrandTooLong},
		},
		{
			name: "year beyond int4",
			body: `{"name":"Fusca","brand":"VW","year":3000000000}`,
			want: []string{services.MsgYearOutOfRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/veiculos", token, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			var v models.ValidationErrors
			decodeJSON(t, w, &v)
			assert.Equal(t, tt.want, v.Messages)
		})
	}

	assert.Zero(t, s.vehicles.CallCount("Create"))
}

func TestUpdateVehicle_ValidationRejectsWithoutMutation(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)
	vehicle := &models.Vehicle{Name: "Fusca", Brand: "VW", Year: 1975}
	require.NoError(t, s.vehicles.Create(context.Background(), vehicle))

	w := s.do(t, http.MethodPut, fmt.Sprintf("/veiculos/%d", vehicle.ID), token,
		models.VehicleRequest{Name: "Fusca", Brand: "VW", Year: 1900})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, s.vehicles.CallCount("Update"))

	stored, err := s.vehicles.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1975, stored.Year)
}

func TestVehicle_NotFoundShortCircuits(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)
	valid := models.VehicleRequest{Name: "Fusca", Brand: "VW", Year: 1975}

	tests := []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, valid},
		{http.MethodDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := s.do(t, tt.method, "/veiculos/42", token, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}

	assert.Zero(t, s.vehicles.CallCount("Update"))
	assert.Zero(t, s.vehicles.CallCount("Delete"))
}

func TestVehicleRoutes_Authorization(t *testing.T) {
	s := newTestServer(t)
	editor := s.tokenFor(t, models.RoleEditor)
	vehicle := &models.Vehicle{Name: "Fusca", Brand: "VW", Year: 1975}
	require.NoError(t, s.vehicles.Create(context.Background(), vehicle))
	path := fmt.Sprintf("/veiculos/%d", vehicle.ID)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/veiculos", editor, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, editor, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPut, path, editor,
		models.VehicleRequest{Name: "X", Brand: "Y", Year: 2000}).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, path, editor, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/veiculos", "", nil).Code)

	assert.Zero(t, s.vehicles.CallCount("Update"))
	assert.Zero(t, s.vehicles.CallCount("Delete"))
}

func TestListVehicles_Pagination(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, models.RoleEditor)
	total := models.PageSize + 5
	for i := 0; i < total; i++ {
		require.NoError(t, s.vehicles.Create(context.Background(), &models.Vehicle{
			Name: fmt.Sprintf("car-%d", i), Brand: "VW", Year: 1990,
		}))
	}

	var page []models.Vehicle

	w := s.do(t, http.MethodGet, "/veiculos?pagina=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Len(t, page, models.PageSize)
	assert.Equal(t, int64(1), page[0].ID)

	w = s.do(t, http.MethodGet, "/veiculos?pagina=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Len(t, page, 5)
	assert.Equal(t, int64(models.PageSize+1), page[0].ID)

	w = s.do(t, http.MethodGet, "/veiculos?pagina=9", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Empty(t, page)

	w = s.do(t, http.MethodGet, "/veiculos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Len(t, page, total, "absent page returns the full set")
}

func TestCreateVehicle_StoreError(t *testing.T) {
	s := newTestServer(t)
	s.vehicles.CreateFunc = func(ctx context.Context, vehicle *models.Vehicle) error {
		return errors.New("connection reset")
	}

	w := s.do(t, http.MethodPost, "/veiculos", s.tokenFor(t, models.RoleAdmin),
		models.VehicleRequest{Name: "Fusca", Brand: "VW", Year: 1975})

	assertStatusCode(t, w, http.StatusInternalServerError)
	assertJSONError(t, w, "failed to create vehicle")
}

func TestCreateVehicle_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/veiculos", s.tokenFor(t, models.RoleAdmin), `{"name":"Fusca","year":"old"}`)

	assertStatusCode(t, w, http.StatusBadRequest)
	assertJSONError(t, w, errInvalidBody)
}
