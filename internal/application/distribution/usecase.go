package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// DistributeUseCase registra lotes de entrega: valida disponibilidad de stock
// de todas las líneas y, solo si todas pasan, descuenta el stock y anota las
// filas en el libro de distribuciones. Todo dentro de una transacción con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type DistributeUseCase struct {
	txRunner   TxRunner
	workerRepo repository.WorkerRepository
}

// NewDistributeUseCase construye el caso de uso.
func NewDistributeUseCase(txRunner TxRunner, workerRepo repository.WorkerRepository) *DistributeUseCase {
	return &DistributeUseCase{txRunner: txRunner, workerRepo: workerRepo}
}

// LineItem una línea del lote: producto, cantidad y precio unitario.
type LineItem struct {
	ProductID    string
	Quantity     int64
	PricePerUnit decimal.Decimal
}

// Distribute procesa un lote de entrega para un trabajador.
//
// Política de validación: cada línea exige product.TotalStock >= cantidad
// acumulada solicitada; si CUALQUIER línea falla, el lote entero se rechaza
// sin efecto parcial (no se ajusta stock ni se escribe en el libro).
//
// Política de commit: por cada línea, TotalStock -= cantidad y se agrega una
// fila al libro con TotalAmount = cantidad × precio unitario.
//
// Los dos pases corren dentro de UNA transacción y cada producto referenciado
// queda bloqueado (FOR UPDATE) desde el pase de validación, de modo que dos
// lotes concurrentes sobre el mismo producto no pueden sobregirar el stock.
func (uc *DistributeUseCase) Distribute(
	ctx context.Context,
	companyID, actorName, workerID string,
	lines []LineItem,
) ([]dto.DistributionResponse, error) {
	if companyID == "" || workerID == "" || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if line.PricePerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if actorName == "" {
		actorName = "System Administrator"
	}

	worker, err := uc.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.CompanyID != companyID {
		return nil, domain.ErrWorkerNotFound
	}

	now := time.Now()
	var created []dto.DistributionResponse

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		distRepo repository.DistributionRepository,
	) error {
		// Pase de verificación: bloquea cada producto y confirma disponibilidad.
		// `requested` acumula por producto para que un lote con líneas repetidas
		// del mismo producto no pueda dejar el stock negativo.
		products := make(map[string]*entity.Product)
		requested := make(map[string]int64)
		for _, line := range lines {
			product, ok := products[line.ProductID]
			if !ok {
				product, err = productRepo.GetForUpdate(line.ProductID)
				if err != nil {
					return err
				}
				if product == nil || product.CompanyID != companyID {
					return domain.ErrProductNotFound
				}
				products[line.ProductID] = product
			}
			if product.TotalStock-requested[line.ProductID] < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.ProductName,
					Requested:   line.Quantity,
					Available:   product.TotalStock - requested[line.ProductID],
				}
			}
			requested[line.ProductID] += line.Quantity
		}

		// Pase de ejecución: descuenta stock y anota en el libro.
		for _, line := range lines {
			product := products[line.ProductID]
			product.TotalStock -= line.Quantity
			product.UpdatedAt = now
			if err := productRepo.UpdateStock(product.ID, product.TotalStock); err != nil {
				return err
			}

			d := &entity.Distribution{
				ID:            uuid.New().String(),
				CompanyID:     companyID,
				WorkerID:      worker.ID,
				WorkerName:    worker.Name,
				ProductID:     product.ID,
				ProductName:   product.ProductName,
				Quantity:      line.Quantity,
				PricePerUnit:  line.PricePerUnit,
				TotalAmount:   decimal.NewFromInt(line.Quantity).Mul(line.PricePerUnit),
				DistributedBy: actorName,
				DistributedAt: now,
			}
			if err := distRepo.Append(d); err != nil {
				return err
			}
			created = append(created, toDistributionResponse(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DistributeFromRequest adapta el request HTTP al caso de uso.
func (uc *DistributeUseCase) DistributeFromRequest(
	ctx context.Context,
	companyID, actorName string,
	in dto.CreateDistributionRequest,
) ([]dto.DistributionResponse, error) {
	reqLines := in.Lines()
	lines := make([]LineItem, 0, len(reqLines))
	for _, l := range reqLines {
		lines = append(lines, LineItem{
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			PricePerUnit: l.PricePerUnit,
		})
	}
	return uc.Distribute(ctx, companyID, actorName, in.WorkerID, lines)
}

func toDistributionResponse(d *entity.Distribution) dto.DistributionResponse {
	return dto.DistributionResponse{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		WorkerID:      d.WorkerID,
		WorkerName:    d.WorkerName,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		PricePerUnit:  d.PricePerUnit,
		TotalAmount:   d.TotalAmount,
		DistributedBy: d.DistributedBy,
		DistributedAt: d.DistributedAt,
	}
}
