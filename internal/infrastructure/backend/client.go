package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/events"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// Cliente es el acceso HTTP al API remoto de la casa de empeño: una base URL
// fija, timeout fijo, bearer token tomado del almacén local del contexto, y
// normalización de errores. Sin reintentos, sin backoff, sin deduplicación.
//
// Cualquier respuesta 401 —venga de la llamada que venga— elimina el token del
// contexto y publica SesionExpirada: la desautenticación es ambiental.
type Cliente struct {
	base    string
	http    *http.Client
	almacen repository.AlmacenLocal
	bus     *events.Bus
	log     *logger.Logger

	Clientes    *GrupoClientes
	Articulos   *GrupoArticulos
	Prestamos   *GrupoPrestamos
	Contratos   *GrupoContratos
	Pagos       *GrupoPagos
	Tienda      *GrupoTienda
	Compras     *GrupoCompras
	Promociones *GrupoPromociones
	Ubicaciones *GrupoUbicaciones
	Documentos  *GrupoDocumentos
	Admin       *GrupoAdmin
}

// NewCliente construye el cliente con el timeout fijo de configuración.
func NewCliente(cfg config.BackendConfig, almacen repository.AlmacenLocal, bus *events.Bus, log *logger.Logger) *Cliente {
	c := &Cliente{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		almacen: almacen,
		bus:     bus,
		log:     log,
	}
	c.Clientes = &GrupoClientes{c}
	c.Articulos = &GrupoArticulos{c}
	c.Prestamos = &GrupoPrestamos{c}
	c.Contratos = &GrupoContratos{c}
	c.Pagos = &GrupoPagos{c}
	c.Tienda = &GrupoTienda{c}
	c.Compras = &GrupoCompras{c}
	c.Promociones = &GrupoPromociones{c}
	c.Ubicaciones = &GrupoUbicaciones{c}
	c.Documentos = &GrupoDocumentos{c}
	c.Admin = &GrupoAdmin{c}
	return c
}

// ErrorBackend es un 4xx/5xx con cuerpo de mensaje; el mensaje se muestra al
// usuario tal cual (errores de validación del backend).
type ErrorBackend struct {
	Status  int
	Mensaje string
}

func (e *ErrorBackend) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Mensaje)
}

// ArchivoSubida es un archivo para endpoints multipart (imágenes de artículos).
type ArchivoSubida struct {
	Campo     string
	Nombre    string
	Contenido []byte
}

// hacer ejecuta una llamada JSON y decodifica la respuesta en salida (si no es nil).
func (c *Cliente) hacer(ctx context.Context, contexto, metodo, ruta string, cuerpo, salida any) error {
	var lector io.Reader
	if cuerpo != nil {
		crudo, err := json.Marshal(cuerpo)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		lector = bytes.NewReader(crudo)
	}
	req, err := http.NewRequestWithContext(ctx, metodo, c.base+ruta, lector)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.enviar(req, contexto, ruta, salida)
}

// hacerMultipart ejecuta un POST multipart/form-data (subida de archivos).
func (c *Cliente) hacerMultipart(ctx context.Context, contexto, ruta string, campos map[string]string, archivos []ArchivoSubida, salida any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range campos {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("campo multipart %s: %w", k, err)
		}
	}
	for _, a := range archivos {
		fw, err := w.CreateFormFile(a.Campo, a.Nombre)
		if err != nil {
			return fmt.Errorf("archivo multipart %s: %w", a.Nombre, err)
		}
		if _, err := fw.Write(a.Contenido); err != nil {
			return fmt.Errorf("archivo multipart %s: %w", a.Nombre, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+ruta, &buf)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.enviar(req, contexto, ruta, salida)
}

// enviar adjunta el bearer token si existe, ejecuta la petición y normaliza la
// respuesta. Registra y devuelve el error: las páginas deciden cómo mostrarlo.
func (c *Cliente) enviar(req *http.Request, contexto, ruta string, salida any) error {
	token, err := c.almacen.Obtener(req.Context(), contexto, repository.ClaveToken)
	if err != nil {
		c.log.Warn().Err(err).Msg("lectura del token del almacén local")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("ruta", ruta).Msg("llamada al backend")
		return fmt.Errorf("%w: %v", domain.ErrBackendNoDisponible, err)
	}
	defer resp.Body.Close()

	cuerpo, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("ruta", ruta).Msg("lectura de respuesta del backend")
		return fmt.Errorf("%w: %v", domain.ErrBackendNoDisponible, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Desautenticación ambiental: limpiar el token y avisar al servicio
		// de sesión, sin importar qué página originó la llamada.
		if err := c.almacen.Eliminar(req.Context(), contexto, repository.ClaveToken); err != nil {
			c.log.Warn().Err(err).Msg("borrado del token tras 401")
		}
		c.bus.Publicar(events.SesionExpirada{Contexto: contexto})
		c.log.Warn().Str("ruta", ruta).Msg("401 del backend, sesión invalidada")
		return domain.ErrSesionExpirada
	}

	if resp.StatusCode >= 400 {
		e := &ErrorBackend{Status: resp.StatusCode, Mensaje: extraerMensaje(cuerpo)}
		c.log.Warn().Int("status", resp.StatusCode).Str("ruta", ruta).Str("mensaje", e.Mensaje).Msg("error del backend")
		return e
	}

	if salida == nil || len(cuerpo) == 0 {
		return nil
	}
	if err := decodificar(cuerpo, salida); err != nil {
		c.log.Error().Err(err).Str("ruta", ruta).Msg("decodificación de respuesta del backend")
		return fmt.Errorf("respuesta inesperada del backend: %w", err)
	}
	return nil
}

// decodificar acepta tanto el payload crudo como el sobre {data: ...}.
func decodificar(cuerpo []byte, salida any) error {
	var sobre struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(cuerpo, &sobre); err == nil && len(sobre.Data) > 0 {
		return json.Unmarshal(sobre.Data, salida)
	}
	return json.Unmarshal(cuerpo, salida)
}

// extraerMensaje busca el mensaje de error en las formas que usa el backend.
func extraerMensaje(cuerpo []byte) string {
	var m struct {
		Message string `json:"message"`
		Mensaje string `json:"mensaje"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(cuerpo, &m); err == nil {
		switch {
		case m.Message != "":
			return m.Message
		case m.Mensaje != "":
			return m.Mensaje
		case m.Error != "":
			return m.Error
		}
	}
	if len(cuerpo) > 0 {
		return string(cuerpo)
	}
	return "error del servidor"
}
