//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"oficina-criativa/internal/handler/api"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"
	"oficina-criativa/tests/common/httptest"
	"oficina-criativa/tests/common/testutil"
	commandsmock "oficina-criativa/tests/mock/commands"
	queriesmock "oficina-criativa/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockProductQueries
	mockCommands *commandsmock.MockProductCommands
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerSuite))
}

func (s *ProductHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	handler := api.NewProductHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/products", handler.List)
	s.router.GET("/products/:slug", handler.GetBySlug)
	s.router.GET("/admin/products", handler.ListAll)
	s.router.POST("/admin/products", handler.Create)
	s.router.PUT("/admin/products/:id", handler.Update)
	s.router.DELETE("/admin/products/:id", handler.Delete)
}

func (s *ProductHandlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProductHandlerSuite) TestListReturnsActiveProducts() {
	s.mockQueries.EXPECT().
		ListActive(gomock.Any()).
		Return([]*queries.ProductView{
			{ID: uuid.New(), Slug: "painel-das-palavras", Name: "Painel das Palavras"},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

	var views []*queries.ProductView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	s.Require().Len(views, 1)
	s.Equal("painel-das-palavras", views[0].Slug)
}

func (s *ProductHandlerSuite) TestGetBySlugNotFound() {
	s.mockQueries.EXPECT().
		GetBySlug(gomock.Any(), "missing").
		Return(nil, queries.ErrProductNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/missing", nil, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
}

func (s *ProductHandlerSuite) TestGetBySlugReturnsProduct() {
	view := &queries.ProductView{ID: uuid.New(), Slug: "painel-das-palavras", Name: "Painel das Palavras"}
	s.mockQueries.EXPECT().
		GetBySlug(gomock.Any(), "painel-das-palavras").
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/painel-das-palavras", nil, "")

	var got queries.ProductView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(view.Slug, got.Slug)
	s.Equal(view.Name, got.Name)
}

func validCreateRequest() gin.H {
	return gin.H{
		"slug":       "painel-das-palavras",
		"name":       "Painel das Palavras",
		"price_text": "€5,00",
		"is_active":  true,
		"sort_order": 5,
	}
}

func (s *ProductHandlerSuite) TestCreateReturnsNewID() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(id, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", validCreateRequest(), "")

	var resp map[string]string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal(id.String(), resp["id"])
}

func (s *ProductHandlerSuite) TestCreateValidation() {
	cases := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing slug",
			body: testutil.DtoMap(s.T(), validCreateRequest(), testutil.Field("slug", nil)),
		},
		{
			name: "missing name",
			body: testutil.DtoMap(s.T(), validCreateRequest(), testutil.Field("name", nil)),
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", tc.body, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}
}

func (s *ProductHandlerSuite) TestCreateRejectsDuplicateSlug() {
	s.mockCommands.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, commands.ErrDuplicateSlug)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", validCreateRequest(), "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "slug already exists")
}

func (s *ProductHandlerSuite) TestUpdatePartial() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, params commands.UpdateProductParams) error {
			s.Require().NotNil(params.PriceText)
			s.Equal("€6,00", *params.PriceText)
			s.Nil(params.Name)
			return nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/products/"+id.String(),
		gin.H{"price_text": "€6,00"}, "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *ProductHandlerSuite) TestUpdateRejectsBadID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/products/not-a-uuid",
		gin.H{"price_text": "€6,00"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid product id")
}

func (s *ProductHandlerSuite) TestDeleteNotFound() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Delete(gomock.Any(), id).
		Return(commands.ErrProductNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/products/"+id.String(), nil, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
}

func (s *ProductHandlerSuite) TestDeleteSucceeds() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/products/"+id.String(), nil, "")

	s.Equal(http.StatusNoContent, w.Code)
}
