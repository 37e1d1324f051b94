package main

import "acuario/internal/app"

// @title           Acuario API
// @version         1.0
// @description     Backend de captura de leads: formulario de contacto con reCAPTCHA, autenticación y gestión de leads.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
