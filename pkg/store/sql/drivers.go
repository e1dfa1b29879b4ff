package sql

// Drivers available to the sql source kind.
import (
	_ "github.com/databricks/databricks-sql-go"
	_ "github.com/marcboeker/go-duckdb/v2"
	_ "github.com/snowflakedb/gosnowflake"
)

const (
	DriverDatabricks = "databricks"
	DriverDuckDB     = "duckdb"
	DriverSnowflake  = "snowflake"
)
