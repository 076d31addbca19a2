package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	transactiondomain "github.com/tapetashop/tapeta/internal/transaction/domain"
)

func (s *Server) PostPurchase(c *gin.Context) {
	var req transactiondomain.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.transactionSvc.Purchase(c.Request.Context(), req)
	s.obsMetrics.RecordPosting(string(transactiondomain.TypePurchase), err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if req.PrintReceipt && len(result.Receipt) > 0 {
		c.Header("Content-Disposition", `attachment; filename="receipt.pdf"`)
		c.Data(http.StatusOK, "application/pdf", result.Receipt)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "purchase posted"})
}

func (s *Server) PostReturn(c *gin.Context) {
	var req transactiondomain.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.transactionSvc.Return(c.Request.Context(), req)
	s.obsMetrics.RecordPosting(string(transactiondomain.TypeReturn), err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "return posted"})
}

func (s *Server) PostDefect(c *gin.Context) {
	var req transactiondomain.DefectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.transactionSvc.Defect(c.Request.Context(), req)
	s.obsMetrics.RecordPosting(string(transactiondomain.TypeDefect), err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "defect posted"})
}

func (s *Server) PostSupply(c *gin.Context) {
	var req transactiondomain.SupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.transactionSvc.Supply(c.Request.Context(), req)
	s.obsMetrics.RecordPosting(string(transactiondomain.TypeSupply), err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "supply posted"})
}
