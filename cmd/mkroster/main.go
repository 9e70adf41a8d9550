// mkroster writes a synthetic roster workbook for tests and demos.
// Rows use plausible Chilean names, services and RUTs; --invalid blanks a
// required column on that many rows to exercise the validation path.
// Usage: go run ./cmd/mkroster --out testdata/roster-small.xlsx --rows 20 --invalid 3
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/camm-health/stayload/internal/model"
)

var firstNames = []string{
	"María", "José", "Carlos", "Juan", "Pedro", "Luis", "Francisco", "Jorge",
	"Ana", "Rosa", "Isabel", "Patricia", "Carmen", "Claudia", "Carolina",
	"Camila", "Daniela", "Valentina", "Felipe", "Rodrigo",
}

var lastNames = []string{
	"González", "Muñoz", "Rodríguez", "García", "Martínez", "López",
	"Pérez", "Fernández", "Sánchez", "Torres", "Rojas", "Silva", "Morales",
}

var services = []string{"Medicina Interna", "Geriatría", "Traumatología", "Cirugía", "Neurología"}

var diagnoses = []string{
	"Neumonía adquirida en la comunidad", "Caída con fractura de cadera",
	"Insuficiencia cardíaca descompensada", "Accidente cerebrovascular isquémico",
	"Infección del tracto urinario",
}

func main() {
	out := flag.String("out", "testdata/roster-small.xlsx", "output workbook")
	rows := flag.Int("rows", 20, "data rows to generate")
	invalid := flag.Int("invalid", 0, "rows with a blanked required column")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	file := xlsx.NewFile()
	sh, err := file.AddSheet("Pacientes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "add sheet: %v\n", err)
		os.Exit(1)
	}

	header := sh.AddRow()
	for _, h := range model.FieldHeaders() {
		header.AddCell().SetString(h)
	}

	today := time.Now()
	for i := 0; i < *rows; i++ {
		name := fmt.Sprintf("%s %s", pick(rng, firstNames), pick(rng, lastNames))
		admission := today.AddDate(0, 0, -rng.Intn(30)).Format("2006-01-02")

		row := sh.AddRow()
		values := []any{
			name,
			rut(rng),
			18 + rng.Intn(80),
			admission,
			pick(rng, services),
			pick(rng, diagnoses),
			fmt.Sprintf("GRD-%03d", 100+rng.Intn(400)),
			float64(3 + rng.Intn(12)),
			fmt.Sprintf("Dr. %s", pick(rng, lastNames)),
			fmt.Sprintf("%d%02d", 2+rng.Intn(4), 1+rng.Intn(30)),
			pick(rng, []string{"Fonasa", "Isapre"}),
			fmt.Sprintf("+56 9 %04d %04d", rng.Intn(10000), rng.Intn(10000)),
		}
		// Blank one required column on the first --invalid rows.
		if i < *invalid {
			values[rng.Intn(2)*5] = "" // name or diagnosis
		}
		for _, v := range values {
			cell := row.AddCell()
			if v != "" {
				cell.SetValue(v)
			}
		}
	}

	if err := file.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "save workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows (%d invalid) to %s\n", *rows, *invalid, *out)
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

// rut generates a syntactically valid RUT with a mod-11 verifier digit.
func rut(rng *rand.Rand) string {
	n := 5_000_000 + rng.Intn(20_000_000)
	sum, mult, rest := 0, 2, n
	for rest > 0 {
		sum += (rest % 10) * mult
		rest /= 10
		mult++
		if mult > 7 {
			mult = 2
		}
	}
	verifier := 11 - sum%11
	var dv string
	switch verifier {
	case 11:
		dv = "0"
	case 10:
		dv = "K"
	default:
		dv = fmt.Sprintf("%d", verifier)
	}
	return fmt.Sprintf("%d-%s", n, dv)
}
