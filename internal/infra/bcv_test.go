package infra_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sijj2003/app-tienda/internal/infra"

	"github.com/stretchr/testify/assert"
)

const paginaBCV = `<html><body>
<div class="view-tipo-de-cambio-oficial">
  <div id="euro"><strong> 39,12345678 </strong></div>
  <div id="dolar" class="centrado">
    <span>USD</span>
    <strong> 36,58421234 </strong>
  </div>
</div>
</body></html>`

func newCB() *infra.CircuitBreaker {
	return infra.NewCircuitBreaker(infra.DefaultCBConfig())
}

func TestFetchTasa_ExtraeLaCotizacion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(paginaBCV))
	}))
	defer srv.Close()

	client := infra.NewBCVClient(srv.URL, newCB())
	tasa, err := client.FetchTasa(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "36.58421234", tasa.String())
}

func TestFetchTasa_SeparadorDeMiles(t *testing.T) {
	// Si la tasa supera los miles el BCV publica "1.234,56".
	pagina := `<div id="dolar"><strong>1.234,56</strong></div>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pagina))
	}))
	defer srv.Close()

	client := infra.NewBCVClient(srv.URL, newCB())
	tasa, err := client.FetchTasa(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "1234.56", tasa.String())
}

func TestFetchTasa_PaginaSinCotizacion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>mantenimiento</body></html>"))
	}))
	defer srv.Close()

	client := infra.NewBCVClient(srv.URL, newCB())
	_, err := client.FetchTasa(context.Background())
	assert.Error(t, err)
}

func TestFetchTasa_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := infra.NewBCVClient(srv.URL, newCB())
	_, err := client.FetchTasa(context.Background())
	assert.Error(t, err)
}

func TestFetchTasa_BreakerAbreTrasFallas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cb := newCB()
	client := infra.NewBCVClient(srv.URL, cb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.FetchTasa(ctx)
		assert.Error(t, err)
	}
	assert.Equal(t, infra.CBOpen, cb.State())

	// Con el breaker abierto ni siquiera toca la red.
	_, err := client.FetchTasa(ctx)
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
}

func TestLicencia_VerificarYGenerar(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, infra.VerificarLicencia(dir, "secreto-tienda"), infra.ErrLicenciaInvalida)

	assert.NoError(t, infra.GenerarLicencia(dir, "secreto-tienda"))
	assert.NoError(t, infra.VerificarLicencia(dir, "secreto-tienda"))

	// Otro secreto no valida contra el mismo archivo.
	assert.ErrorIs(t, infra.VerificarLicencia(dir, "otro-secreto"), infra.ErrLicenciaInvalida)
}
