package apiclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/camm-health/stayload/internal/apiclient"
)

func rosterFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacientes.csv")
	content := "Nombre,Edad,Fecha Ingreso,Servicio,Diagnóstico\nAna Silva,70,2025-01-10,Geriatría,Caída\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPushFile(t *testing.T) {
	var gotPath, gotFileName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotFileName = fh.Filename
		buf, _ := io.ReadAll(f)
		gotContent = string(buf)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","processed_count":1,"errors":["Fila 3: Falta el nombre del paciente"]}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 5*time.Second)
	result, err := client.PushFile(context.Background(), rosterFile(t))
	if err != nil {
		t.Fatalf("PushFile: %v", err)
	}

	if gotPath != "/excel/upload-patients" {
		t.Errorf("path = %q", gotPath)
	}
	if gotFileName != "pacientes.csv" {
		t.Errorf("uploaded name = %q", gotFileName)
	}
	if !strings.Contains(gotContent, "Ana Silva") {
		t.Errorf("uploaded bytes should carry the raw file, got %q", gotContent)
	}

	if result.Status != "success" || result.Processed != 1 {
		t.Errorf("result = %+v", result)
	}
	report := result.Report()
	if report.Imported != 1 || len(report.Errors) != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestPushFile_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Formato de archivo no soportado"}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 5*time.Second)
	_, err := client.PushFile(context.Background(), rosterFile(t))
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "Formato de archivo no soportado") {
		t.Errorf("error should carry the service detail: %v", err)
	}
}

func TestPushFile_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 5*time.Second)
	_, err := client.PushFile(context.Background(), rosterFile(t))
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("error should carry the plain-text body: %v", err)
	}
}

func TestPushFile_MissingFile(t *testing.T) {
	client := apiclient.New("http://localhost:1", time.Second)
	_, err := client.PushFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/excel/upload-patients" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","processed_count":0,"errors":[]}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL+"/", 5*time.Second)
	if _, err := client.PushFile(context.Background(), rosterFile(t)); err != nil {
		t.Fatalf("PushFile: %v", err)
	}
}
