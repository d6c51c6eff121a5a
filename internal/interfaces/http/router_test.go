package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegofsiilva/cenas-bar/internal/application/auth"
	appcommand "github.com/diegofsiilva/cenas-bar/internal/application/command"
	"github.com/diegofsiilva/cenas-bar/internal/application/inventory"
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
	"github.com/diegofsiilva/cenas-bar/internal/application/report"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
	apphttp "github.com/diegofsiilva/cenas-bar/internal/interfaces/http"
	"github.com/diegofsiilva/cenas-bar/pkg/config"
)

// ─── Fakes em memória (todos os portos que o router precisa) ─────────────────

type memStore struct {
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	tables     map[string]*entity.Table
	commands   map[string]*entity.Command
	sales      map[string]*entity.Sale
	movements  []*entity.StockMovement
	license    *entity.License
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]*entity.Category{},
		products:   map[string]*entity.Product{},
		tables:     map[string]*entity.Table{},
		commands:   map[string]*entity.Command{},
		sales:      map[string]*entity.Sale{},
	}
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) Create(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.s.categories[id], nil
}
func (r memCategoryRepo) GetAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r memCategoryRepo) Update(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r memCategoryRepo) Delete(id string) error          { delete(r.s.categories, id); return nil }

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(p *entity.Product) error             { r.s.products[p.ID] = p; return nil }
func (r memProductRepo) GetByID(id string) (*entity.Product, error) { return r.s.products[id], nil }
func (r memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r memProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r memProductRepo) GetLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.StockQuantity <= p.MinStockAlert {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r memProductRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r memProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r memProductRepo) UpdateStock(id string, quantity int) error {
	r.s.products[id].StockQuantity = quantity
	return nil
}
func (r memProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type memTableRepo struct{ s *memStore }

func (r memTableRepo) Create(tb *entity.Table) error            { r.s.tables[tb.ID] = tb; return nil }
func (r memTableRepo) GetByID(id string) (*entity.Table, error) { return r.s.tables[id], nil }
func (r memTableRepo) GetAll() ([]*entity.Table, error)         { return nil, nil }
func (r memTableRepo) Update(tb *entity.Table) error            { r.s.tables[tb.ID] = tb; return nil }
func (r memTableRepo) Delete(id string) error                   { delete(r.s.tables, id); return nil }

type memCommandRepo struct{ s *memStore }

func (r memCommandRepo) Create(c *entity.Command) error { r.s.commands[c.ID] = c; return nil }
func (r memCommandRepo) GetByID(id string) (*entity.Command, error) {
	return r.s.commands[id], nil
}
func (r memCommandRepo) GetForUpdate(id string) (*entity.Command, error) {
	return r.s.commands[id], nil
}
func (r memCommandRepo) GetAll() ([]*entity.Command, error) {
	out := make([]*entity.Command, 0, len(r.s.commands))
	for _, c := range r.s.commands {
		out = append(out, c)
	}
	return out, nil
}
func (r memCommandRepo) GetOpenByTable(tableID string) (*entity.Command, error) {
	for _, c := range r.s.commands {
		if c.TableID == tableID && c.Status == entity.CommandOpen {
			return c, nil
		}
	}
	return nil, nil
}
func (r memCommandRepo) Update(c *entity.Command) error { r.s.commands[c.ID] = c; return nil }
func (r memCommandRepo) Delete(id string) error         { delete(r.s.commands, id); return nil }

type memSaleRepo struct{ s *memStore }

func (r memSaleRepo) Create(sale *entity.Sale) error          { r.s.sales[sale.ID] = sale; return nil }
func (r memSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r memSaleRepo) GetAll() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, sale)
	}
	return out, nil
}

type memMovementRepo struct{ s *memStore }

func (r memMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r memMovementRepo) GetAll() ([]*entity.StockMovement, error) { return r.s.movements, nil }

type memLicenseRepo struct{ s *memStore }

func (r memLicenseRepo) Get() (*entity.License, error) { return r.s.license, nil }
func (r memLicenseRepo) Save(l *entity.License) error  { r.s.license = l; return nil }
func (r memLicenseRepo) Clear() error                  { r.s.license = nil; return nil }

type memReportRepo struct{ s *memStore }

func (r memReportRepo) SalesSummary(_ context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	revenue := decimal.Zero
	count := 0
	for _, sale := range r.s.sales {
		if !sale.CreatedAt.Before(from) && sale.CreatedAt.Before(to) {
			revenue = revenue.Add(sale.Total)
			count++
		}
	}
	return revenue, count, nil
}
func (r memReportRepo) CountOpenCommands(context.Context) (int, error) {
	n := 0
	for _, c := range r.s.commands {
		if c.Status == entity.CommandOpen {
			n++
		}
	}
	return n, nil
}
func (r memReportRepo) TopProducts(context.Context, time.Time, time.Time, int) ([]repository.TopProductResult, error) {
	return nil, nil
}

// memTxRunner satisfaz os dois portos de transação entregando os repos direto.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(_ context.Context, fn func(
	repository.CommandRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.SaleRepository,
) error) error {
	return fn(memCommandRepo{r.s}, memProductRepo{r.s}, memMovementRepo{r.s}, memSaleRepo{r.s})
}

func (r memTxRunner) RunStock(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	return fn(memProductRepo{r.s}, memMovementRepo{r.s})
}

type stubReceiptGen struct{}

func (stubReceiptGen) Generate(*entity.Sale) ([]byte, error) { return []byte("%PDF-stub"), nil }

// ─── Montagem do app ─────────────────────────────────────────────────────────

func buildApp(s *memStore) *fiber.App {
	licCfg := config.LicenseConfig{MasterPassword: "senha-mestre", WarningDays: 7}
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}

	licSvc := license.NewService(memLicenseRepo{s}, licCfg)
	tx := memTxRunner{s}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(memCategoryRepo{s}, memProductRepo{s}),
		ProductUC:   usecase.NewProductUseCase(memProductRepo{s}, memCategoryRepo{s}),
		TableUC:     usecase.NewTableUseCase(memTableRepo{s}, memCommandRepo{s}),
		SaleUC:      usecase.NewSaleUseCase(memSaleRepo{s}, stubReceiptGen{}),
		CommandUC:   appcommand.NewUseCase(tx, memCommandRepo{s}, memTableRepo{s}, memProductRepo{s}),
		InventoryUC: inventory.NewUseCase(tx, memMovementRepo{s}),
		ReportUC:    report.NewUseCase(memReportRepo{s}, memProductRepo{s}),
		LicenseSvc:  licSvc,
		AuthUC:      auth.NewUseCase(licSvc, jwtCfg),
		Metrics:     apphttp.NewMetrics(),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...[2]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		req.Header.Set(h[0], h[1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedTable(s *memStore, id, name string) {
	s.tables[id] = &entity.Table{ID: id, Name: name, CreatedAt: time.Now()}
}

func seedProduct(s *memStore, id, name string, price int64, stock int) {
	s.products[id] = &entity.Product{
		ID: id, Name: name, CategoryID: "c1", CategoryName: "Bebidas",
		Price: decimal.NewFromInt(price), StockQuantity: stock, CreatedAt: time.Now(),
	}
}

// ─── Recursos CRUD ───────────────────────────────────────────────────────────

func TestCreateCategory(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodPost, "/categories", fiber.Map{"name": "Cervejas"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]bool
	decodeBody(t, resp, &body)
	assert.True(t, body["success"])
}

func TestCreateCategory_SemNome(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodPost, "/categories", fiber.Map{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCategory_SemID(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodDelete, "/categories", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "delete sem id é 400")
}

func TestDeleteCategory_ComProdutos(t *testing.T) {
	s := newMemStore()
	s.categories["c1"] = &entity.Category{ID: "c1", Name: "Bebidas"}
	seedProduct(s, "p1", "Chope", 12, 10)
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodDelete, "/categories?id=c1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ─── Comandas ────────────────────────────────────────────────────────────────

func TestOpenCommand_EConflitoDeMesa(t *testing.T) {
	s := newMemStore()
	seedTable(s, "t1", "Mesa 1")
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var cmd map[string]any
	decodeBody(t, resp, &cmd)
	assert.Equal(t, "Mesa 1", cmd["tableName"])
	assert.Equal(t, "open", cmd["status"])

	// Mesma mesa de novo: conflito.
	resp = doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestOpenCommand_MesaInexistente(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "fantasma"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFinalizeFlow(t *testing.T) {
	s := newMemStore()
	seedTable(s, "t1", "Mesa 1")
	seedProduct(s, "p1", "Chope", 12, 10)
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cmd map[string]any
	decodeBody(t, resp, &cmd)
	cmdID := cmd["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/commands/"+cmdID+"/items",
		fiber.Map{"productId": "p1", "quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/commands/"+cmdID+"/finalize",
		fiber.Map{"paymentMethod": "pix"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sale map[string]any
	decodeBody(t, resp, &sale)
	assert.Equal(t, "pix", sale["paymentMethod"])
	assert.Equal(t, cmdID, sale["commandId"])

	// Estoque baixado e movimento sale registrado.
	assert.Equal(t, 7, s.products["p1"].StockQuantity)
	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementSale, s.movements[0].Type)

	// Segunda finalização conflita.
	resp = doJSON(t, app, http.MethodPost, "/commands/"+cmdID+"/finalize",
		fiber.Map{"paymentMethod": "pix"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFinalize_ComandaVazia(t *testing.T) {
	s := newMemStore()
	seedTable(s, "t1", "Mesa 1")
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cmd map[string]any
	decodeBody(t, resp, &cmd)

	resp = doJSON(t, app, http.MethodPost, "/commands/"+cmd["id"].(string)+"/finalize",
		fiber.Map{"paymentMethod": "cash"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAddItem_EstoqueInsuficiente(t *testing.T) {
	s := newMemStore()
	seedTable(s, "t1", "Mesa 1")
	seedProduct(s, "p1", "Chope", 12, 1)
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cmd map[string]any
	decodeBody(t, resp, &cmd)

	resp = doJSON(t, app, http.MethodPost, "/commands/"+cmd["id"].(string)+"/items",
		fiber.Map{"productId": "p1", "quantity": 5})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ─── Estoque ─────────────────────────────────────────────────────────────────

func TestRegisterMovement(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Chope", 12, 10)
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/inventory",
		fiber.Map{"productId": "p1", "type": "in", "quantity": 5, "reason": "reposição"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 15, s.products["p1"].StockQuantity)
}

func TestRegisterMovement_TipoSale(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Chope", 12, 10)
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/inventory",
		fiber.Map{"productId": "p1", "type": "sale", "quantity": 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLowStockEndpoint(t *testing.T) {
	s := newMemStore()
	s.products["p1"] = &entity.Product{ID: "p1", Name: "Chope", StockQuantity: 1, MinStockAlert: 5}
	s.products["p2"] = &entity.Product{ID: "p2", Name: "Porção", StockQuantity: 50, MinStockAlert: 5}
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodGet, "/products/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	decodeBody(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0]["id"])
}

// ─── Licença e painel administrativo ─────────────────────────────────────────

func TestLicenseLifecycleOverHTTP(t *testing.T) {
	s := newMemStore()
	app := buildApp(s)

	// Sem licença: inválida.
	resp := doJSON(t, app, http.MethodGet, "/license", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info map[string]any
	decodeBody(t, resp, &info)
	assert.Equal(t, false, info["isValid"])

	// Login administrativo.
	resp = doJSON(t, app, http.MethodPost, "/admin/login", fiber.Map{"masterPassword": "senha-mestre"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginOut map[string]string
	decodeBody(t, resp, &loginOut)
	require.NotEmpty(t, loginOut["token"])
	bearer := [2]string{"Authorization", "Bearer " + loginOut["token"]}

	// Emite código e ativa.
	resp = doJSON(t, app, http.MethodPost, "/admin/activation-codes", fiber.Map{"days": 30}, bearer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var codeOut map[string]string
	decodeBody(t, resp, &codeOut)
	require.NotEmpty(t, codeOut["code"])

	resp = doJSON(t, app, http.MethodPost, "/license", fiber.Map{"activationCode": codeOut["code"]})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &info)
	assert.Equal(t, true, info["isValid"])
	assert.Equal(t, float64(30), info["daysRemaining"])

	// Limpeza exige admin.
	resp = doJSON(t, app, http.MethodDelete, "/license", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/license", nil, bearer)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, s.license)
}

func TestAdminLogin_SenhaErrada(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodPost, "/admin/login", fiber.Map{"masterPassword": "errada"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestActivate_CodigoLixo(t *testing.T) {
	s := newMemStore()
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodPost, "/license", fiber.Map{"activationCode": "###lixo###"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, s.license, "código inválido não persiste licença")
}

func TestGenerateCode_SemToken(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodPost, "/admin/activation-codes", fiber.Map{"days": 30})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ─── Painel, cupom e ops ─────────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	s := newMemStore()
	s.sales["s1"] = &entity.Sale{
		ID: "s1", Total: decimal.NewFromInt(66), CreatedAt: time.Now(),
	}
	s.commands["cmd1"] = &entity.Command{ID: "cmd1", Status: entity.CommandOpen}
	s.products["p1"] = &entity.Product{ID: "p1", Name: "Chope", StockQuantity: 1, MinStockAlert: 5}
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodGet, "/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, float64(1), out["salesToday"])
	assert.Equal(t, float64(1), out["openCommands"])
	assert.Equal(t, float64(1), out["lowStockCount"])
}

func TestReceiptEndpoint(t *testing.T) {
	s := newMemStore()
	s.sales["s1"] = &entity.Sale{ID: "s1", TableName: "Mesa 1", CreatedAt: time.Now()}
	app := buildApp(s)

	resp := doJSON(t, app, http.MethodGet, "/sales/s1/receipt", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp404 := doJSON(t, app, http.MethodGet, "/sales/fantasma/receipt", nil)
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestHealth(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildApp(newMemStore())

	resp := doJSON(t, app, http.MethodGet, "/metrics", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "bar_commands_opened_total")
}

func TestOpenCommandsByTableQuery(t *testing.T) {
	s := newMemStore()
	seedTable(s, "t1", "Mesa 1")
	app := buildApp(s)

	// Sem comanda aberta: null.
	resp := doJSON(t, app, http.MethodGet, "/commands?tableId=t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))

	resp = doJSON(t, app, http.MethodPost, "/commands", fiber.Map{"tableId": "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/commands?tableId=t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cmd map[string]any
	decodeBody(t, resp, &cmd)
	assert.Equal(t, "t1", cmd["tableId"])
}
