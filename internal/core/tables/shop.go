package tables

import (
	"github.com/JonMunkholm/shopseed/internal/core"
	"github.com/JonMunkholm/shopseed/internal/dataset"
)

func init() {
	registerCustomers()
	registerCategories()
	registerProducts()
	registerOrders()
	registerOrderDetails()
}

func references(table, column string) *core.Reference {
	return &core.Reference{Table: table, Column: column}
}

func registerCustomers() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "Customers",
			Label: "Customers",
			File:  dataset.CustomersFile,
		},
		PrimaryKey: "CustomerID",
		FieldSpecs: []core.FieldSpec{
			{Name: "CustomerID", Type: core.FieldText, NotNull: true},
			{Name: "FirstName", Type: core.FieldText, NotNull: true},
			{Name: "LastName", Type: core.FieldText, NotNull: true},
			{Name: "Email", Type: core.FieldText, NotNull: true},
			{Name: "Phone", Type: core.FieldText},
			{Name: "City", Type: core.FieldText},
			{Name: "Country", Type: core.FieldText},
			{Name: "CreatedAt", Type: core.FieldTimestamp, NotNull: true},
		},
	})
}

func registerCategories() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "Categories",
			Label: "Categories",
			File:  dataset.CategoriesFile,
		},
		PrimaryKey: "CategoryID",
		FieldSpecs: []core.FieldSpec{
			{Name: "CategoryID", Type: core.FieldText, NotNull: true},
			{Name: "CategoryName", Type: core.FieldText, NotNull: true},
			{Name: "Department", Type: core.FieldText},
			{Name: "ParentCategory", Type: core.FieldText, EmptyAsNull: true},
		},
	})
}

func registerProducts() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "Products",
			Label: "Products",
			File:  dataset.ProductsFile,
		},
		PrimaryKey: "ProductID",
		FieldSpecs: []core.FieldSpec{
			{Name: "ProductID", Type: core.FieldText, NotNull: true},
			{Name: "SKU", Type: core.FieldText, NotNull: true},
			{Name: "ProductName", Type: core.FieldText, NotNull: true},
			{Name: "CategoryID", Type: core.FieldText, NotNull: true, References: references("Categories", "CategoryID")},
			{Name: "UnitPrice", Type: core.FieldReal, NotNull: true},
			{Name: "UnitCost", Type: core.FieldReal, NotNull: true},
			{Name: "StockQuantity", Type: core.FieldInt, NotNull: true},
			{Name: "Active", Type: core.FieldBool, NotNull: true, Check: "Active IN (0,1)"},
		},
	})
}

func registerOrders() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "Orders",
			Label: "Orders",
			File:  dataset.OrdersFile,
		},
		PrimaryKey: "OrderID",
		FieldSpecs: []core.FieldSpec{
			{Name: "OrderID", Type: core.FieldText, NotNull: true},
			{Name: "CustomerID", Type: core.FieldText, NotNull: true, References: references("Customers", "CustomerID")},
			{Name: "OrderDate", Type: core.FieldTimestamp, NotNull: true},
			{Name: "ShippedDate", Type: core.FieldTimestamp},
			{Name: "OrderStatus", Type: core.FieldText, NotNull: true},
			{Name: "ShippingMethod", Type: core.FieldText},
			{Name: "ShippingCity", Type: core.FieldText},
			{Name: "ShippingCountry", Type: core.FieldText},
			{Name: "OrderTotal", Type: core.FieldReal, NotNull: true, Default: "0"},
		},
	})
}

func registerOrderDetails() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "OrderDetails",
			Label: "Order Details",
			File:  dataset.OrderDetailsFile,
		},
		PrimaryKey: "OrderDetailID",
		FieldSpecs: []core.FieldSpec{
			{Name: "OrderDetailID", Type: core.FieldText, NotNull: true},
			{Name: "OrderID", Type: core.FieldText, NotNull: true, References: references("Orders", "OrderID")},
			{Name: "ProductID", Type: core.FieldText, NotNull: true, References: references("Products", "ProductID")},
			{Name: "Quantity", Type: core.FieldInt, NotNull: true},
			{Name: "UnitPrice", Type: core.FieldReal, NotNull: true},
			{Name: "Discount", Type: core.FieldReal, NotNull: true, Default: "0"},
			{Name: "LineNumber", Type: core.FieldInt, NotNull: true},
			{Name: "LineTotal", Type: core.FieldReal, NotNull: true},
		},
	})
}
