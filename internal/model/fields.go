package model

// Field describes one logical roster column: its canonical Spanish header used
// by the template/export generators, and the ordered list of accepted header
// spellings tried during import (accented, unaccented, English fallback).
type Field struct {
	Key      string   // stable identifier, e.g. "name"
	Header   string   // canonical header written to templates/exports
	Aliases  []string // accepted spellings in resolution order
	Required bool
}

// AllFields lists the roster columns in canonical template/export order.
var AllFields = []Field{
	{Key: "name", Header: "Nombre", Aliases: []string{"Nombre", "nombre", "name"}, Required: true},
	{Key: "rut", Header: "RUT", Aliases: []string{"RUT", "Rut", "rut"}},
	{Key: "age", Header: "Edad", Aliases: []string{"Edad", "edad", "age"}, Required: true},
	{Key: "admission_date", Header: "Fecha Ingreso", Aliases: []string{"Fecha Ingreso", "Fecha de Ingreso", "Fe.admisión", "fecha_ingreso", "admission_date"}, Required: true},
	{Key: "service", Header: "Servicio", Aliases: []string{"Servicio", "servicio", "service"}, Required: true},
	{Key: "diagnosis", Header: "Diagnóstico", Aliases: []string{"Diagnóstico", "Diagnostico", "diagnóstico", "diagnostico", "diagnosis"}, Required: true},
	{Key: "grd_code", Header: "GRD", Aliases: []string{"GRD", "GRG", "grd"}},
	{Key: "expected_stay_days", Header: "Estadía Esperada (días)", Aliases: []string{"Estadía Esperada (días)", "Estadia Esperada", "Estancia Norma GRD", "expected_stay"}},
	{Key: "responsible_clinician", Header: "Médico Responsable", Aliases: []string{"Médico Responsable", "Medico Responsable", "Médico", "Medico", "clinician"}},
	{Key: "bed", Header: "Cama", Aliases: []string{"Cama", "cama", "bed"}},
	{Key: "insurance", Header: "Previsión", Aliases: []string{"Previsión", "Prevision", "previsión", "prevision", "insurance"}},
	{Key: "contact", Header: "Contacto", Aliases: []string{"Contacto", "contacto", "contact"}},
}

// FieldHeaders returns the canonical headers for all fields in order.
func FieldHeaders() []string {
	headers := make([]string, len(AllFields))
	for i, f := range AllFields {
		headers[i] = f.Header
	}
	return headers
}

// FieldByKey returns the Field for the given key, or ok=false.
func FieldByKey(key string) (Field, bool) {
	for _, f := range AllFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
