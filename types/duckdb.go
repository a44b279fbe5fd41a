package types

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

const cityFile = "./data/villes.csv"

func InitDuckDB() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetCities reads the local gazetteer, biggest cities first.
func GetCities(db *sql.DB) ([]City, error) {
	stmt, err := db.Prepare(fmt.Sprintf(`
		SELECT name, lat, long, population
		FROM read_csv('%s', header = true)
		ORDER BY population DESC
	`, cityFile))

	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query()

	if err != nil {
		return nil, err
	}

	cities := make([]City, 0, 1000)

	var (
		name       string
		lat, long  float64
		population int64
	)

	for {
		if rows.Next() {
			rows.Scan(&name, &lat, &long, &population)
			cities = append(cities, City{
				Name:       name,
				Lat:        lat,
				Long:       long,
				Population: population,
			})
		} else {
			break
		}
	}

	return cities, nil
}

func GetCityByName(db *sql.DB, name string) (*City, error) {
	stmt, err := db.Prepare(fmt.Sprintf(`
		SELECT name, lat, long, population
		FROM read_csv('%s', header = true)
		WHERE name = ?
	`, cityFile))

	if err != nil {
		return nil, err
	}

	var city City
	row := stmt.QueryRow(name)
	err = row.Scan(&city.Name, &city.Lat, &city.Long, &city.Population)
	if err != nil {
		return nil, fmt.Errorf("no city named %s: %w", name, err)
	}

	return &city, nil
}

func GetClosestCity(db *sql.DB, long, lat float64) (*City, error) {
	stmt, err := db.Prepare(fmt.Sprintf(`
		SELECT name, lat, long, population
		FROM read_csv('%s', header = true)
		ORDER BY (lat - ?)*(lat - ?) + (long - ?)*(long - ?)
		LIMIT 1
	`, cityFile))

	if err != nil {
		return nil, err
	}

	var city City
	row := stmt.QueryRow(lat, lat, long, long)
	err = row.Scan(&city.Name, &city.Lat, &city.Long, &city.Population)
	if err != nil {
		return nil, err
	}

	return &city, nil
}
