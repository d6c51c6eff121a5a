package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
)

// ─── Fakes em memória ────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error { f.byID[c.ID] = c; return nil }

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.byID))
	for _, c := range f.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error { f.byID[c.ID] = c; return nil }
func (f *fakeCategoryRepo) Delete(id string) error          { delete(f.byID, id); return nil }

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.byID[p.ID] = p; return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.GetByID(id) }

func (f *fakeProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) GetLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if p.StockQuantity <= p.MinStockAlert {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { f.byID[p.ID] = p; return nil }

func (f *fakeProductRepo) UpdateStock(id string, quantity int) error {
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (f *fakeProductRepo) Delete(id string) error { delete(f.byID, id); return nil }

type fakeTableRepo struct {
	byID map[string]*entity.Table
}

func newFakeTableRepo() *fakeTableRepo { return &fakeTableRepo{byID: map[string]*entity.Table{}} }

func (f *fakeTableRepo) Create(tb *entity.Table) error { f.byID[tb.ID] = tb; return nil }

func (f *fakeTableRepo) GetByID(id string) (*entity.Table, error) {
	tb, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *tb
	return &cp, nil
}

func (f *fakeTableRepo) GetAll() ([]*entity.Table, error) { return nil, nil }
func (f *fakeTableRepo) Update(tb *entity.Table) error    { f.byID[tb.ID] = tb; return nil }
func (f *fakeTableRepo) Delete(id string) error           { delete(f.byID, id); return nil }

// fakeCommandRepo só precisa responder GetOpenByTable para o guard de mesa.
type fakeCommandRepo struct {
	openByTable map[string]*entity.Command
}

func (f *fakeCommandRepo) Create(*entity.Command) error                 { return nil }
func (f *fakeCommandRepo) GetByID(string) (*entity.Command, error)      { return nil, nil }
func (f *fakeCommandRepo) GetForUpdate(string) (*entity.Command, error) { return nil, nil }
func (f *fakeCommandRepo) GetAll() ([]*entity.Command, error)           { return nil, nil }
func (f *fakeCommandRepo) Update(*entity.Command) error                 { return nil }
func (f *fakeCommandRepo) Delete(string) error                          { return nil }

func (f *fakeCommandRepo) GetOpenByTable(tableID string) (*entity.Command, error) {
	return f.openByTable[tableID], nil
}

type fakeSaleRepo struct {
	byID map[string]*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.byID[s.ID] = s; return nil }

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) GetAll() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.byID))
	for _, s := range f.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeReceiptGen struct {
	called bool
}

func (f *fakeReceiptGen) Generate(*entity.Sale) ([]byte, error) {
	f.called = true
	return []byte("%PDF-fake"), nil
}

// ─── Categorias ──────────────────────────────────────────────────────────────

func TestCategoryCreate_NomeObrigatorio(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryDelete_ComProdutosConflita(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	uc := NewCategoryUseCase(categories, products)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Cervejas"})
	require.NoError(t, err)
	require.NoError(t, products.Create(&entity.Product{ID: "p1", CategoryID: out.ID}))

	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)

	// Sem produtos, a exclusão passa.
	require.NoError(t, products.Delete("p1"))
	require.NoError(t, uc.Delete(out.ID))
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound)
}

// ─── Produtos ────────────────────────────────────────────────────────────────

func TestProductCreate_SnapshotDaCategoria(t *testing.T) {
	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: "c1", Name: "Cervejas"}))
	uc := NewProductUseCase(newFakeProductRepo(), categories)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:       "Chope",
		CategoryID: "c1",
		Price:      decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cervejas", out.CategoryName)
}

func TestProductCreate_Validacoes(t *testing.T) {
	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: "c1", Name: "Cervejas"}))
	uc := NewProductUseCase(newFakeProductRepo(), categories)

	_, err := uc.Create(dto.CreateProductRequest{Name: "", CategoryID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Chope", CategoryID: "c1", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Chope", CategoryID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_TrocaDeCategoriaRefazSnapshot(t *testing.T) {
	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: "c1", Name: "Cervejas"}))
	require.NoError(t, categories.Create(&entity.Category{ID: "c2", Name: "Petiscos"}))
	uc := NewProductUseCase(newFakeProductRepo(), categories)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Porção", CategoryID: "c1", Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	newCat := "c2"
	out, err := uc.Update(dto.UpdateProductRequest{ID: created.ID, CategoryID: &newCat})
	require.NoError(t, err)
	assert.Equal(t, "Petiscos", out.CategoryName)
}

// Renomear a categoria não refaz o snapshot nos produtos existentes.
func TestProductSnapshot_NaoSegueRenomeDaCategoria(t *testing.T) {
	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: "c1", Name: "Cervejas"}))
	products := newFakeProductRepo()
	uc := NewProductUseCase(products, categories)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Chope", CategoryID: "c1", Price: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	catUC := NewCategoryUseCase(categories, products)
	newName := "Chopes e Cervejas"
	_, err = catUC.Update(dto.UpdateCategoryRequest{ID: "c1", Name: &newName})
	require.NoError(t, err)

	p, _ := products.GetByID(created.ID)
	assert.Equal(t, "Cervejas", p.CategoryName)
}

func TestProductLowStock(t *testing.T) {
	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: "c1", Name: "Cervejas"}))
	products := newFakeProductRepo()
	uc := NewProductUseCase(products, categories)

	require.NoError(t, products.Create(&entity.Product{
		ID: "p1", Name: "Chope", CategoryID: "c1", StockQuantity: 2, MinStockAlert: 5,
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p2", Name: "Porção", CategoryID: "c1", StockQuantity: 50, MinStockAlert: 5,
	}))

	low, err := uc.GetLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "p1", low[0].ID)
}

// ─── Mesas ───────────────────────────────────────────────────────────────────

func TestTableDelete_ComComandaAbertaConflita(t *testing.T) {
	tables := newFakeTableRepo()
	require.NoError(t, tables.Create(&entity.Table{ID: "t1", Name: "Mesa 1"}))
	commands := &fakeCommandRepo{openByTable: map[string]*entity.Command{
		"t1": {ID: "cmd1", TableID: "t1", Status: entity.CommandOpen},
	}}
	uc := NewTableUseCase(tables, commands)

	err := uc.Delete("t1")
	assert.ErrorIs(t, err, domain.ErrTableOccupied)

	// Comanda fechada libera a exclusão.
	delete(commands.openByTable, "t1")
	require.NoError(t, uc.Delete("t1"))
}

// ─── Vendas ──────────────────────────────────────────────────────────────────

func TestSaleGetByID_Inexistente(t *testing.T) {
	uc := NewSaleUseCase(&fakeSaleRepo{byID: map[string]*entity.Sale{}}, &fakeReceiptGen{})

	_, err := uc.GetByID("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleReceipt(t *testing.T) {
	gen := &fakeReceiptGen{}
	uc := NewSaleUseCase(&fakeSaleRepo{byID: map[string]*entity.Sale{
		"s1": {ID: "s1", TableName: "Mesa 1", Total: decimal.NewFromInt(66), CreatedAt: time.Now()},
	}}, gen)

	pdf, err := uc.Receipt("s1")
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.NotEmpty(t, pdf)

	_, err = uc.Receipt("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
