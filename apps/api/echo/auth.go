package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/staff"
)

var (
	// appJWTConfig is the default JWT auth middleware config.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "staffToken",
		Claims:        new(Claims),
	}
	contextAccountKey = "account"
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
}

func GetStaffClaims(acct staff.Account, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   acct.ID,
			Audience:  "Studio",
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
		Username:     acct.Username,
		Email:        acct.Email,
	}
	return claims
}

func authenticate(uname, pwd string, svc *staff.Service) (*Claims, error) {
	acct, err := svc.GetByUsernameOrEmail(uname)
	if err != nil {
		if err == staff.ErrNotFound {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "finding account by username or email")
	}
	if err = acct.CheckPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	if !acct.IsActive {
		return nil, errAccountDeactivated
	}
	acct, err = svc.SetLastLogin(acct)
	if err != nil {
		return nil, errors.Wrap(err, "setting lastLogin")
	}
	return GetStaffClaims(acct), nil
}

// GenerateToken generates a signed JWT token string representing the account Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextAccount(ctx echo.Context, svc *staff.Service, clms ...Claims) (staff.Account, error) {
	if acct, ok := ctx.Get(contextAccountKey).(staff.Account); ok {
		return acct, nil
	}

	var claims Claims
	var err error
	if len(clms) > 0 {
		claims = clms[0]
	} else {
		claims, err = getContextClaims(ctx)
		if err != nil {
			return staff.Account{}, errors.Wrap(err, "getting context claims")
		}
	}

	acct, err := svc.GetByID(claims.Subject)
	if err != nil {
		return staff.Account{}, errors.Wrap(err, "finding account by ID")
	}
	ctx.Set(contextAccountKey, acct)
	return acct, nil
}

func refreshToken(ctx echo.Context, svc *staff.Service) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}

	acct, err := getContextAccount(ctx, svc, claims)
	if err != nil {
		return "", errors.Wrap(err, "getting context account")
	}

	// check if account is still active
	if !acct.IsActive {
		return "", errAccountDeactivated
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(core.Conf.Server.JWTRefreshExpirationDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	newClaims := GetStaffClaims(acct, claims.OrigIssuedAt)
	token, err := GenerateToken(newClaims)
	return token, errors.Wrap(err, "generating token")
}
