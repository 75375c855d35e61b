// Package core provides the table registry, schema rendering, field
// transforms and the CSV load pipeline.
//
// The package has no driver dependencies. It is used by the load and report
// commands and by the HTTP server; the store package supplies the concrete
// [Store].
//
// # Table Registry
//
// Tables are registered at init time using [Register]. Each [TableDefinition]
// lists its columns as [FieldSpec] values, which drive both the DDL and the
// per-cell conversion:
//
//	core.Register(core.TableDefinition{
//	    Info:       core.TableInfo{Key: "Products", File: "products.csv"},
//	    PrimaryKey: "ProductID",
//	    FieldSpecs: []core.FieldSpec{
//	        {Name: "ProductID", Type: core.FieldText, NotNull: true},
//	        {Name: "CategoryID", Type: core.FieldText, NotNull: true,
//	            References: &core.Reference{Table: "Categories", Column: "CategoryID"}},
//	        {Name: "UnitPrice", Type: core.FieldReal, NotNull: true},
//	    },
//	})
//
// [LoadOrder] sorts the registered tables so parents load before children.
//
// # Load Pipeline
//
// [Loader.Run] performs a full replace:
//
//  1. Check that the data directory and every source file exist
//  2. [Store.Recreate] drops the previous tables (or database file)
//  3. Apply [SchemaStatements] for the store's [Dialect]
//  4. For each table, parse the CSV, convert every record with [BuildRow]
//     and insert all rows in one transaction via [Store.InsertRows]
//
// A bad record aborts the run with a [TableError] naming the table, file and
// line. Nothing is skipped silently.
//
// [Service] wraps a loader and a store for the commands and the HTTP server:
// it bounds a load with LOAD_TIMEOUT and reports per-table row counts.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code:
//
//   - DB001-DB007: Database errors (duplicates, constraints, connections)
//   - VAL001-VAL007: Validation errors (formats, missing columns)
//   - FILE001-FILE005: File errors (size, format, permissions)
//   - LOAD001-LOAD003: Load errors (missing sources or database, timeouts)
//   - TBL001-TBL002: Table errors
package core
