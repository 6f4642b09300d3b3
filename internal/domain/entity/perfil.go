package entity

// PerfilCliente son los datos de perfil que se cachean de forma oportunista
// en el almacén local y que el checkout lee para prellenar el envío.
type PerfilCliente struct {
	Nombre       string `json:"nombre"`
	Telefono     string `json:"telefono"`
	Direccion    string `json:"direccion"`
	Ciudad       string `json:"ciudad"`
	Departamento string `json:"departamento"`
	CodigoPostal string `json:"codigoPostal"`
}
