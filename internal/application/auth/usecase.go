package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
	"github.com/jhoicas/crm-pyme/pkg/jwt"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de cuentas: registro, login, selección de empresa,
// fundar una empresa y solicitar unirse a una existente.
type UseCase struct {
	userRepo       repository.UserRepository
	companyRepo    repository.CompanyRepository
	membershipRepo repository.MembershipRepository
	txRunner       TxRunner
	jwtCfg         JWTConfig
}

// NewUseCase construye el caso de uso de cuentas.
func NewUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	membershipRepo repository.MembershipRepository,
	txRunner TxRunner,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		membershipRepo: membershipRepo,
		txRunner:       txRunner,
		jwtCfg:         jwtCfg,
	}
}

// Signup crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y genera el JWT. Con una sola membresía
// aprobada el token queda atado a esa empresa; con varias, el token sale sin
// empresa y la respuesta trae la lista para elegir; sin ninguna se rechaza
// con ErrNoCompanyAccess.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	memberships, err := uc.membershipRepo.ListApprovedByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	switch len(memberships) {
	case 0:
		return nil, domain.ErrNoCompanyAccess
	case 1:
		m := memberships[0]
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, m.CompanyID, m.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token:     token,
			User:      *toUserResponse(user),
			CompanyID: m.CompanyID,
			Role:      m.Role,
		}, nil
	default:
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, "", "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		options, err := uc.companyOptions(ctx, memberships)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token:     token,
			User:      *toUserResponse(user),
			Companies: options,
		}, nil
	}
}

// SelectCompany emite un token atado a la empresa elegida. Solo vale para
// empresas donde el usuario tiene membresía aprobada.
func (uc *UseCase) SelectCompany(ctx context.Context, userID string, in dto.SelectCompanyRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	m, err := uc.membershipRepo.GetByUserAndCompany(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.Status != entity.MembershipApproved {
		return nil, domain.ErrNoCompanyAccess
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, m.CompanyID, m.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		User:      *toUserResponse(user),
		CompanyID: m.CompanyID,
		Role:      m.Role,
	}, nil
}

// StartCompany funda una empresa: dentro de una transacción crea la empresa y
// la membresía Admin aprobada del fundador. Devuelve ErrDuplicate si el nombre
// ya está tomado. El token resultante ya viene atado a la nueva empresa.
func (uc *UseCase) StartCompany(ctx context.Context, userID string, in dto.StartCompanyRequest) (*dto.StartCompanyResponse, error) {
	existing, err := uc.companyRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Industry:  in.Industry,
		OwnerID:   userID,
		CreatedAt: now,
	}
	err = uc.txRunner.RunAccounts(ctx, func(companyRepo repository.CompanyRepository, membershipRepo repository.MembershipRepository) error {
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return membershipRepo.Create(ctx, &entity.Membership{
			ID:        uuid.New().String(),
			UserID:    userID,
			CompanyID: company.ID,
			Role:      entity.RoleAdmin,
			Status:    entity.MembershipApproved,
			Salary:    decimal.Zero,
			JoinedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, company.ID, entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.StartCompanyResponse{
		Company: toCompanyResponse(company),
		Token:   token,
	}, nil
}

// JoinCompany registra una solicitud de ingreso a una empresa existente por
// nombre. La membresía queda Staff/Pending hasta que un Admin la apruebe.
func (uc *UseCase) JoinCompany(ctx context.Context, userID string, in dto.JoinCompanyRequest) (*dto.MembershipResponse, error) {
	company, err := uc.companyRepo.GetByName(ctx, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.membershipRepo.GetByUserAndCompany(ctx, userID, company.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	m := &entity.Membership{
		ID:        uuid.New().String(),
		UserID:    userID,
		CompanyID: company.ID,
		Role:      entity.RoleStaff,
		Status:    entity.MembershipPending,
		Salary:    decimal.Zero,
		JoinedAt:  time.Now(),
	}
	if err := uc.membershipRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MembershipResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Role:     m.Role,
		Status:   m.Status,
		Salary:   m.Salary,
		JoinedAt: m.JoinedAt,
	}, nil
}

func (uc *UseCase) companyOptions(ctx context.Context, memberships []*entity.Membership) ([]dto.CompanyOption, error) {
	options := make([]dto.CompanyOption, 0, len(memberships))
	for _, m := range memberships {
		company, err := uc.companyRepo.GetByID(ctx, m.CompanyID)
		if err != nil {
			return nil, err
		}
		name := ""
		if company != nil {
			name = company.Name
		}
		options = append(options, dto.CompanyOption{
			CompanyID:   m.CompanyID,
			CompanyName: name,
			Role:        m.Role,
		})
	}
	return options, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Industry:  c.Industry,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
	}
}
