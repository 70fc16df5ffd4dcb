package handlers

// @title Manufacturing Traceability API
// @version 1.0
// @description Traceability endpoints for part status, gitterbox contents, card authentication and forging-line scans

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey FunctionKey
// @in header
// @name X-Functions-Key

// @tag.name auth
// @tag.description Card authentication

// @tag.name status
// @tag.description Part and gitterbox status operations

// @tag.name gitter
// @tag.description Gitterbox content lookups

// @tag.name forging
// @tag.description Forging-line scan workstream

// @tag.name protocol
// @tag.description Measurement protocol links
