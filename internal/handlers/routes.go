package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
)

// Handlers groups the endpoint handlers mounted by RegisterRoutes
type Handlers struct {
	Auth           *AuthHandlers
	Pessoa         *PessoaHandlers
	PessoaFisica   *PessoaFisicaHandlers
	PessoaJuridica *PessoaJuridicaHandlers
	Lookup         *LookupHandlers
	Health         *HealthHandlers
}

// RegisterRoutes mounts the API under /api with its access policies.
// Every /api request passes through optional authentication and the audit
// trail; protected groups then require a valid token and a role.
func RegisterRoutes(router *gin.Engine, h Handlers, validator middleware.TokenValidator) {
	router.GET("/health", h.Health.HealthCheck)

	api := router.Group("/api", middleware.OptionalAuth(validator), middleware.AuditMiddleware())

	authenticated := func(p middleware.Policy) []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.AuthMiddleware(validator), middleware.RequirePolicy(p)}
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/registrar", h.Auth.Registrar)

		account := auth.Group("", authenticated(middleware.AnyAuthenticated)...)
		account.POST("/alterar-senha", h.Auth.AlterarSenha)
		account.GET("/me", h.Auth.Me)
		account.GET("/validar-token", h.Auth.ValidarToken)
		account.GET("/usuarios", middleware.RequirePolicy(middleware.AdminOnly), h.Auth.ListUsuarios)
	}

	pessoa := api.Group("/pessoa", authenticated(middleware.AnyAuthenticated)...)
	{
		pessoa.GET("", h.Pessoa.ListPessoas)
		pessoa.GET("/search", h.Pessoa.SearchPessoas)
		pessoa.GET("/:codigo", h.Pessoa.GetPessoa)
		pessoa.DELETE("/:codigo", middleware.RequirePolicy(middleware.AdminOnly), h.Pessoa.DeletePessoa)
	}

	fisica := api.Group("/pessoafisica", authenticated(middleware.AnyAuthenticated)...)
	{
		fisica.GET("", h.PessoaFisica.ListPessoasFisicas)
		fisica.GET("/:codigo", h.PessoaFisica.GetPessoaFisica)
		fisica.POST("", middleware.RequirePolicy(middleware.UserOrAbove), h.PessoaFisica.CreatePessoaFisica)
		fisica.PUT("/:codigo", middleware.RequirePolicy(middleware.UserOrAbove), h.PessoaFisica.UpdatePessoaFisica)
	}

	juridica := api.Group("/pessoajuridica", authenticated(middleware.AnyAuthenticated)...)
	{
		juridica.GET("", h.PessoaJuridica.ListPessoasJuridicas)
		juridica.GET("/:codigo", h.PessoaJuridica.GetPessoaJuridica)
		juridica.POST("", middleware.RequirePolicy(middleware.UserOrAbove), h.PessoaJuridica.CreatePessoaJuridica)
		juridica.PUT("/:codigo", middleware.RequirePolicy(middleware.UserOrAbove), h.PessoaJuridica.UpdatePessoaJuridica)
	}

	// reference tables are public
	api.GET("/estado", h.Lookup.ListEstados)
	api.GET("/estado/:codigo", h.Lookup.GetEstado)
	api.GET("/cidade", h.Lookup.ListCidades)
	api.GET("/cidade/estado/:estadoId", h.Lookup.ListCidadesPorEstado)
	api.GET("/cidade/:codigo", h.Lookup.GetCidade)
	api.GET("/cep/:cep", h.Lookup.GetCep)
	api.GET("/cbo", h.Lookup.ListCBOs)
	api.GET("/cbo/:codigo", h.Lookup.GetCBO)
	api.GET("/nacionalidade", h.Lookup.ListNacionalidades)
	api.GET("/nacionalidade/:codigo", h.Lookup.GetNacionalidade)
	api.GET("/atividadeeconomica", h.Lookup.ListAtividades)
	api.GET("/atividadeeconomica/setor/:setor", h.Lookup.ListAtividadesPorSetor)
	api.GET("/atividadeeconomica/:codigo", h.Lookup.GetAtividade)
	api.GET("/estadocivil", h.Lookup.ListEstadosCivis)

	tipos := api.Group("", authenticated(middleware.AnyAuthenticated)...)
	tipos.GET("/tipotelefone", h.Lookup.ListTiposTelefone)
	tipos.GET("/tipoenderecoeletronico", h.Lookup.ListTiposEnderecoEletronico)
}
