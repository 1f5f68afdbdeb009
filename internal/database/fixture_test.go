package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFiles are the database file names used by the fixtures.
var testFiles = Files{
	PLTE:         "DB_PLTE.db",
	Ownership:    "DB_Kepemilikan.db",
	Transactions: "DB_Transaksi_Harian.db",
	Market:       "Database_Domestik_Internasional.db",
}

// createDB creates a SQLite file in dir and runs the given statements.
func createDB(t *testing.T, dir, file string, stmts ...string) {
	t.Helper()

	dsn, err := fileURI(filepath.Join(dir, file), "rwc")
	require.NoError(t, err)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err, stmt)
	}
}

// setupFixtures writes all four databases with two or three days of data.
func setupFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	createDB(t, dir, testFiles.PLTE,
		`CREATE TABLE DB_PLTE (
			tanggal_transaksi TEXT, Securities_Id TEXT, Yield REAL, Price REAL,
			Coupon_Rate REAL, Volume REAL, Value REAL, Mature_Date TEXT)`,
		`INSERT INTO DB_PLTE VALUES
			('2023-12-29', 'FR0091', 7.00, 95.0, 6.375, 1e9, 9.5e8, '2032-04-15'),
			('2024-01-01', 'FR0091', 6.40, 99.0, 6.375, 1e9, 9.9e8, '2032-04-15'),
			('2024-01-02', 'FR0091', 6.50, 98.0, 6.375, 2e9, 1.96e9, '2032-04-15'),
			('2024-01-02', 'FR0100', NULL, 97.5, 6.625, 5e8, 4.875e8, '2034-02-15')`,
	)

	createDB(t, dir, testFiles.Ownership,
		`CREATE TABLE Kepemilikan_Investor_Tradable (
			tanggal TEXT, KATEGORI_SBN TEXT, Total_CN REAL, Total_CR REAL, Total_OR REAL)`,
		`INSERT INTO Kepemilikan_Investor_Tradable VALUES
			('2023-12-29', 'SUN', 1e12, 1e12, 1e12),
			('2024-01-01', 'SUN', 90e12, 190e12, 45e12),
			('2024-01-02', 'SBSN', 40e12, 50e12, 10e12),
			('2024-01-02', 'SUN', 60e12, 150e12, 40e12)`,
	)

	createDB(t, dir, testFiles.Transactions,
		`CREATE TABLE Transaksi_Harian (
			TANGGAL_SETELMEN TEXT, JENIS_TRANSAKSI TEXT, SERI TEXT,
			NOMINAL REAL, NILAI_TRANSAKSI REAL, YIELD REAL)`,
		`INSERT INTO Transaksi_Harian VALUES
			('2023-12-29', 'SALE', 'FR0091', 1e12, 1e12, 7.0),
			('2024-01-01', 'SALE', 'FR0091', 2e12, 2e12, 6.4),
			('2024-01-02', 'SALE', 'FR0091', 6e12, 6e12, 6.5),
			('2024-01-02', 'SALE', 'FR0092', 4e12, 4e12, 6.7),
			('2024-01-02', 'REPO', 'FR0091', 5e12, 5e12, 6.1)`,
	)

	createDB(t, dir, testFiles.Market,
		`CREATE TABLE Kurs_IDR (tanggal TEXT, USD REAL, EUR REAL, JPY REAL, SGD REAL)`,
		`INSERT INTO Kurs_IDR VALUES
			('2023-12-29', 15400, 17000, 108, 11600),
			('2024-01-01', 15500, 17100, 109, 11650),
			('2024-01-02', 15550, 17050, 110, 11700)`,
		`CREATE TABLE "10Y_General" (tanggal TEXT, Indonesia REAL, USA REAL)`,
		`INSERT INTO "10Y_General" VALUES ('2024-01-01', 5.20, 4.05), ('2024-01-02', 5.25, 4.00)`,
		`CREATE TABLE CDS_Indo (tanggal TEXT, PRICE REAL, TENOR TEXT)`,
		`INSERT INTO CDS_Indo VALUES
			('2024-01-01', 80.0, 'CDS 5Y'),
			('2024-01-02', 75.25, 'CDS 5Y'),
			('2024-01-02', 75.25, 'CDS 5Y'),
			('2024-01-02', 130.5, 'CDS 10Y'),
			('2024-01-02', 40.0, 'CDS 1Y')`,
		`CREATE TABLE NDF_Update (tanggal TEXT, IHN_1M_Curncy REAL, IHN_6M_Curncy REAL, IHN_12M_Curncy REAL)`,
		`INSERT INTO NDF_Update VALUES ('2024-01-01', 15600, 15650, 15730), ('2024-01-02', 15580, 15640, NULL)`,
		`CREATE TABLE Saham_Peers (
			tanggal TEXT, Indonesia REAL, USA REAL, Japan REAL, Hongkong REAL, Shanghai REAL, German REAL)`,
		`INSERT INTO Saham_Peers VALUES
			('2024-01-01', 7000, 4800, 33000, 17000, 2900, 16700),
			('2024-01-02', 7070, 4752, 33500, 16830, 2929, 16867)`,
		`CREATE TABLE Commodity_DB (tanggal TEXT, ICP REAL, WTI REAL, PALM_OIL REAL)`,
		`INSERT INTO Commodity_DB VALUES ('2024-01-01', 77.0, 73.0, 840.0), ('2024-01-02', 78.5, 74.25, 850.0)`,
	)

	return dir
}
