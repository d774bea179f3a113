package handler

import (
	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/dto"
	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	companyService *usecase.CompanyService
}

func NewCompanyHandler(companyService *usecase.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create creates a new company.
// POST /v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), usecase.CompanyInput{
		RecruitYearID: req.RecruitYearID,
		Name:          req.Name,
		ContactName:   req.ContactName,
		Email:         req.Email,
		Phone:         req.Phone,
		WebsiteURL:    req.WebsiteURL,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, companyBody(company))
}

// Update replaces the contact fields of a company.
// PUT /v1/companies/:company_id
func (h *CompanyHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, domain.CompanyChange{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		WebsiteURL:  req.WebsiteURL,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, companyBody(company))
}

// Get returns a company by id.
// GET /v1/companies/:company_id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, companyBody(company))
}

// Delete removes a company.
// DELETE /v1/companies/:company_id
func (h *CompanyHandler) Delete(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func companyBody(company *domain.Company) gin.H {
	body := gin.H{
		"company_id":      company.ID,
		"recruit_year_id": company.RecruitYearID,
		"name":            company.Name,
		"created_at":      company.CreatedAt,
		"updated_at":      company.UpdatedAt,
		"updated_by":      company.UpdatedBy,
	}
	if company.ContactName != nil {
		body["contact_name"] = company.ContactName.Value()
	}
	if company.Email != nil {
		body["email"] = company.Email.Value()
	}
	if company.Phone != nil {
		body["phone"] = company.Phone.Value()
	}
	if company.WebsiteURL != nil {
		body["website_url"] = company.WebsiteURL.Value()
	}
	return gin.H{"company": body}
}
