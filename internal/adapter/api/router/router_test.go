package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"thriftbay/internal/adapter/api"
	"thriftbay/internal/adapter/api/handler"
	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/adapter/repository"
	"thriftbay/internal/infrastructure/auth"
	"thriftbay/internal/infrastructure/events"
	"thriftbay/internal/infrastructure/revocation"
	"thriftbay/internal/infrastructure/storage"
	"thriftbay/internal/usecase"
	"thriftbay/pkg/response"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T, prefix string) *testServer {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	items := repository.NewMemoryItemRepository()
	orders := repository.NewMemoryOrderRepository()
	contacts := repository.NewMemoryContactRepository()

	objects, err := storage.NewLocalDiskStorage(t.TempDir(), "http://files.test")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("router-test-secret", 7*24*time.Hour)
	hasher := usecase.NewBcryptHasher(bcrypt.MinCost)
	revoker := revocation.NoopRevoker{}
	publisher := events.LogPublisher{}

	handler.Setup(
		usecase.NewAuthUseCase(users, hasher, tokens, revoker),
		usecase.NewUserUseCase(users, items, objects, hasher, revoker),
		usecase.NewItemUseCase(items, users, objects, publisher),
		usecase.NewOrderUseCase(orders, items, users, publisher),
		usecase.NewContactUseCase(contacts, publisher),
		handler.NewCookieConfig(false, tokens.Expiry()),
		1<<20,
	)

	e := echo.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()
	Setup(e, prefix, middleware.NewAuthMiddleware(tokens, revoker), middleware.NewLimiters())
	SetupUploadsRouter(e, objects.Root())

	return &testServer{t: t, e: e}
}

func (s *testServer) do(req *http.Request, session *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var body envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func (s *testServer) doJSON(method, path string, payload interface{}, session *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return s.do(req, session)
}

// doMultipart sends a multipart form with text fields and an optional PNG file.
func (s *testServer) doMultipart(method, path string, fields map[string]string, fileField string, session *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="photo.png"`)
		h.Set("Content-Type", "image/png")
		part, err := w.CreatePart(h)
		require.NoError(s.t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
		require.NoError(s.t, err)
	}
	require.NoError(s.t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return s.do(req, session)
}

func (s *testServer) registerAndLogin(name, email, userType string) (*http.Cookie, string) {
	s.t.Helper()
	rec, body := s.doJSON(http.MethodPost, "/user/register", map[string]string{
		"name": name, "email": email, "phone": "9998887776", "password": "secret1", "type": userType,
	}, nil)
	require.Equal(s.t, http.StatusCreated, rec.Code, body.Message)

	rec, body = s.doJSON(http.MethodPost, "/user/login", map[string]string{"email": email, "password": "secret1"}, nil)
	require.Equal(s.t, http.StatusOK, rec.Code, body.Message)

	var user struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(body.Data, &user))

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return &http.Cookie{Name: c.Name, Value: c.Value}, user.ID
		}
	}
	s.t.Fatalf("login did not set the session cookie")
	return nil, ""
}

func (s *testServer) createItem(session *http.Cookie, name, price string) string {
	s.t.Helper()
	rec, body := s.doMultipart(http.MethodPost, "/user/seller/postingitem", map[string]string{
		"name": name, "address": "12 Market St", "price": price, "phone": "5551234",
		"type": "furniture", "details": "Good condition",
	}, "photo", session)
	require.Equal(s.t, http.StatusCreated, rec.Code, body.Message)

	var item struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(body.Data, &item))
	return item.ID
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, "")

	rec, _ := s.do(httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(t, "")
	payload := map[string]string{
		"name": "Ann", "email": "ANN@x.com ", "phone": "9998887776", "password": "secret1", "type": "seller",
	}

	rec, body := s.doJSON(http.MethodPost, "/user/register", payload, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.NotContains(t, rec.Body.String(), "password")

	payload["email"] = "ann@x.com"
	rec, body = s.doJSON(http.MethodPost, "/user/register", payload, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t, "")

	rec, body := s.doJSON(http.MethodPost, "/user/register", map[string]string{"name": "Ann"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestLoginSessionLifecycle(t *testing.T) {
	s := newTestServer(t, "")

	rec, body := s.doJSON(http.MethodPost, "/user/register", map[string]string{
		"name": "Ann", "email": "ann@x.com", "phone": "1", "password": "secret1", "type": "buyer",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "registration does not start a session")

	rec, body = s.doJSON(http.MethodPost, "/user/login", map[string]string{"email": "ann@x.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Code)

	rec, _ = s.doJSON(http.MethodPost, "/user/login", map[string]string{"email": "ann@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 7*24*60*60, cookies[0].MaxAge)
	session := &http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value}

	rec, body = s.doJSON(http.MethodGet, "/user/me", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &me))
	assert.Equal(t, "ann@x.com", me["email"])
	assert.NotContains(t, me, "password")

	rec, _ = s.doJSON(http.MethodPost, "/user/logout", nil, session)
	assert.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestMutatingEndpointsRequireSession(t *testing.T) {
	s := newTestServer(t, "")
	seller, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")
	itemID := s.createItem(seller, "Lamp", "10")

	routes := []struct{ method, path string }{
		{http.MethodPost, "/user/logout"},
		{http.MethodGet, "/user/me"},
		{http.MethodPut, "/user/profile"},
		{http.MethodPost, "/user/upload-avatar"},
		{http.MethodDelete, "/user/me"},
		{http.MethodGet, "/user/getallitems"},
		{http.MethodGet, "/user/fetchitemdetails/" + itemID},
		{http.MethodPost, "/user/seller/postingitem"},
		{http.MethodGet, "/user/seller/getallitems"},
		{http.MethodPut, "/user/seller/" + itemID},
		{http.MethodDelete, "/user/seller/" + itemID},
		{http.MethodPost, "/user/seller/items/" + itemID + "/rate"},
		{http.MethodGet, "/user/seller/items/" + itemID + "/my-rating"},
		{http.MethodPost, "/user/orders/buy/" + itemID},
		{http.MethodGet, "/user/orders/my"},
		{http.MethodGet, "/user/orders/seller"},
	}

	for _, r := range routes {
		rec, body := s.doJSON(r.method, r.path, map[string]interface{}{"price": 1, "rating": 5, "name": "x"}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
		assert.Equal(t, "UNAUTHENTICATED", body.Code, "%s %s", r.method, r.path)
	}

	rec, body := s.doJSON(http.MethodGet, "/user/seller/item/"+itemID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var item struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		RatingCount int     `json:"ratingCount"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &item))
	assert.Equal(t, "Lamp", item.Name)
	assert.Equal(t, 10.0, item.Price)
	assert.Zero(t, item.RatingCount)

	rec, body = s.doJSON(http.MethodGet, "/user/orders/seller", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"totalItems":0`)
}

func TestPublicItemRoutes(t *testing.T) {
	s := newTestServer(t, "")
	seller, sellerID := s.registerAndLogin("Ann", "ann@x.com", "seller")
	itemID := s.createItem(seller, "Lamp", "10")
	s.createItem(seller, "Rug", "25")

	rec, body := s.doJSON(http.MethodGet, "/user/seller/allpublicitems?page=1&limit=1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items []struct {
			Name   string `json:"name"`
			Seller struct {
				Email string `json:"email"`
			} `json:"seller"`
		} `json:"items"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalItems  int64 `json:"totalItems"`
			HasNext     bool  `json:"hasNext"`
			HasPrev     bool  `json:"hasPrev"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Rug", page.Items[0].Name)
	assert.Equal(t, "ann@x.com", page.Items[0].Seller.Email)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNext)

	rec, _ = s.doJSON(http.MethodGet, "/user/seller/"+sellerID+"/items", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = s.doJSON(http.MethodGet, "/user/fetchitemdetails/"+itemID, nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"photo":{"url":"http://files.test/uploads/items/`)

	rec, body = s.doJSON(http.MethodGet, "/user/seller/item/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestPublicItemsFarPastTheEnd(t *testing.T) {
	s := newTestServer(t, "")
	seller, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")
	s.createItem(seller, "Lamp", "10")

	rec, body := s.doJSON(http.MethodGet, "/user/seller/allpublicitems?page=92233720368547760&limit=100", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
			HasNext    bool  `json:"hasNext"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(1), page.Pagination.TotalItems)
	assert.False(t, page.Pagination.HasNext)
}

func TestBuyerCannotPostItems(t *testing.T) {
	s := newTestServer(t, "")
	buyer, _ := s.registerAndLogin("Bob", "bob@x.com", "buyer")

	rec, body := s.doMultipart(http.MethodPost, "/user/seller/postingitem", map[string]string{
		"name": "Lamp", "address": "a", "price": "10", "phone": "1", "type": "t", "details": "d",
	}, "", buyer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestCreateItemRejectsBadPrice(t *testing.T) {
	s := newTestServer(t, "")
	seller, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")

	rec, body := s.doMultipart(http.MethodPost, "/user/seller/postingitem", map[string]string{
		"name": "Lamp", "address": "a", "price": "cheap", "phone": "1", "type": "t", "details": "d",
	}, "", seller)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	rec, body = s.doMultipart(http.MethodPost, "/user/seller/postingitem", map[string]string{
		"name": "Lamp", "address": "a", "phone": "1", "type": "t", "details": "d",
	}, "", seller)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestOrderKeepsPurchasePrice(t *testing.T) {
	s := newTestServer(t, "")
	seller, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")
	buyer, _ := s.registerAndLogin("Bob", "bob@x.com", "buyer")
	itemID := s.createItem(seller, "Oak table", "500")

	rec, body := s.doJSON(http.MethodPost, "/user/orders/buy/"+itemID, nil, buyer)
	require.Equal(t, http.StatusCreated, rec.Code, body.Message)
	var order struct {
		PricePaid float64 `json:"pricePaid"`
		Status    string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &order))
	assert.Equal(t, 500.0, order.PricePaid)
	assert.Equal(t, "completed", order.Status)

	rec, body = s.doJSON(http.MethodPut, "/user/seller/"+itemID, map[string]interface{}{"price": 900}, seller)
	require.Equal(t, http.StatusOK, rec.Code, body.Message)

	rec, body = s.doJSON(http.MethodGet, "/user/orders/my", nil, buyer)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine struct {
		Orders []struct {
			PricePaid    float64 `json:"pricePaid"`
			ItemSnapshot struct {
				Price float64 `json:"price"`
			} `json:"itemSnapshot"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &mine))
	require.Len(t, mine.Orders, 1)
	assert.Equal(t, 500.0, mine.Orders[0].PricePaid)
	assert.Equal(t, 500.0, mine.Orders[0].ItemSnapshot.Price)

	rec, body = s.doJSON(http.MethodPost, "/user/orders/buy/"+itemID, nil, seller)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestRatingReplacesPrevious(t *testing.T) {
	s := newTestServer(t, "")
	seller, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")
	buyer, _ := s.registerAndLogin("Bob", "bob@x.com", "buyer")
	itemID := s.createItem(seller, "Lamp", "10")

	rec, _ := s.doJSON(http.MethodPost, "/user/seller/items/"+itemID+"/rate", map[string]float64{"rating": 4}, buyer)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.doJSON(http.MethodPost, "/user/seller/items/"+itemID+"/rate", map[string]float64{"rating": 2}, buyer)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := s.doJSON(http.MethodGet, "/user/seller/items/"+itemID+"/my-rating", nil, buyer)
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		MyRating      *float64 `json:"myRating"`
		RatingAverage float64  `json:"ratingAverage"`
		RatingCount   int      `json:"ratingCount"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	require.NotNil(t, result.MyRating)
	assert.Equal(t, 2.0, *result.MyRating)
	assert.Equal(t, 1, result.RatingCount)
	assert.Equal(t, 2.0, result.RatingAverage)

	rec, body = s.doJSON(http.MethodPost, "/user/seller/items/"+itemID+"/rate", map[string]float64{"rating": 7}, buyer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestUpdateOtherSellersItemIsForbidden(t *testing.T) {
	s := newTestServer(t, "")
	ann, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")
	cat, _ := s.registerAndLogin("Cat", "cat@x.com", "seller")
	itemID := s.createItem(cat, "Rug", "25")

	rec, body := s.doMultipart(http.MethodPut, "/user/seller/"+itemID, map[string]string{"price": "1"}, "", ann)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body.Code)

	rec, body = s.doJSON(http.MethodDelete, "/user/seller/"+itemID, nil, ann)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = s.doJSON(http.MethodDelete, "/user/seller/"+itemID, nil, cat)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, body = s.doJSON(http.MethodGet, "/user/seller/item/"+itemID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestProfileAndAvatar(t *testing.T) {
	s := newTestServer(t, "")
	ann, _ := s.registerAndLogin("Ann", "ann@x.com", "seller")

	rec, body := s.doJSON(http.MethodPut, "/user/profile", map[string]string{
		"bio": "Vintage", "phone": "", "newPassword": "abcdef",
	}, ann)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	rec, body = s.doJSON(http.MethodPut, "/user/profile", map[string]string{
		"currentPassword": "wrong1", "newPassword": "abcdef", "confirmPassword": "abcdef",
	}, ann)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", body.Code)

	rec, body = s.doJSON(http.MethodPut, "/user/profile", map[string]string{"bio": "Vintage", "phone": ""}, ann)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Bio    string  `json:"bio"`
		Phone  string  `json:"phone"`
		Avatar *string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &me))
	assert.Equal(t, "Vintage", me.Bio)
	assert.Equal(t, "9998887776", me.Phone)

	rec, body = s.doMultipart(http.MethodPost, "/user/upload-avatar", nil, "", ann)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = s.doMultipart(http.MethodPost, "/user/upload-avatar", nil, "avatar", ann)
	require.Equal(t, http.StatusOK, rec.Code, body.Message)
	require.NoError(t, json.Unmarshal(body.Data, &me))
	require.NotNil(t, me.Avatar)

	avatarPath := (*me.Avatar)[len("http://files.test"):]
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, avatarPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteAccount(t *testing.T) {
	s := newTestServer(t, "")
	ann, _ := s.registerAndLogin("Ann", "ann@x.com", "buyer")

	rec, _ := s.doJSON(http.MethodDelete, "/user/me", nil, ann)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)

	rec, body := s.doJSON(http.MethodGet, "/user/me", nil, ann)
	assert.Equal(t, http.StatusNotFound, rec.Code, "the token outlives the account without a revocation list")
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestContact(t *testing.T) {
	s := newTestServer(t, "")

	rec, body := s.doJSON(http.MethodPost, "/contact", map[string]string{"name": "Ann", "email": "a@x.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	rec, body = s.doJSON(http.MethodPost, "/contact", map[string]string{
		"name": "Ann", "email": "a@x.com", "subject": "Hi", "message": "Question",
	}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
}

func TestStrictRateLimit(t *testing.T) {
	s := newTestServer(t, "")
	payload := map[string]string{"email": "nobody@x.com", "password": "whatever"}

	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		last, _ = s.doJSON(http.MethodPost, "/user/login", payload, nil)
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)

	rec, _ := s.doJSON(http.MethodGet, "/user/seller/allpublicitems", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "the general limiter is separate")
}

func TestAPIPrefix(t *testing.T) {
	s := newTestServer(t, "/api")

	rec, _ := s.doJSON(http.MethodGet, "/api/user/seller/allpublicitems", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.doJSON(http.MethodGet, "/user/seller/allpublicitems", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
