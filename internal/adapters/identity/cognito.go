package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"
)

// CognitoConfig identifies the user pool and app client to operate on.
type CognitoConfig struct {
	Region     string
	UserPoolID string
	ClientID   string
}

// CognitoProvider implements Provider against an AWS Cognito user pool using
// the admin (server-side) API surface.
type CognitoProvider struct {
	client     *cognitoidentityprovider.Client
	userPoolID string
	clientID   string
}

// NewCognitoProvider builds a Cognito-backed identity provider from the
// default AWS configuration chain.
func NewCognitoProvider(ctx context.Context, cfg CognitoConfig) (*CognitoProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &CognitoProvider{
		client:     cognitoidentityprovider.NewFromConfig(awsCfg),
		userPoolID: cfg.UserPoolID,
		clientID:   cfg.ClientID,
	}, nil
}

// CreateAccount registers the account via AdminCreateUser with the welcome
// message suppressed and the email pre-verified.
func (p *CognitoProvider) CreateAccount(ctx context.Context, account Account, tempPassword string) error {
	_, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:        aws.String(p.userPoolID),
		Username:          aws.String(account.Email),
		TemporaryPassword: aws.String(tempPassword),
		MessageAction:     types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(account.Email)},
			{Name: aws.String("given_name"), Value: aws.String(account.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(account.LastName)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return fmt.Errorf("create account for %s: %w", account.Email, ErrAccountExists)
		}
		return fmt.Errorf("create account for %s: %w", account.Email, err)
	}

	logrus.WithField("email", account.Email).Info("identity account created")
	return nil
}

// SetPassword sets the account password via AdminSetUserPassword.
func (p *CognitoProvider) SetPassword(ctx context.Context, email, password string, permanent bool) error {
	_, err := p.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		Permanent:  permanent,
	})
	if err != nil {
		return fmt.Errorf("set password for %s: %w", email, err)
	}
	return nil
}

// Authenticate runs the ADMIN_NO_SRP_AUTH flow and returns the ID token.
func (p *CognitoProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	out, err := p.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(p.userPoolID),
		ClientId:   aws.String(p.clientID),
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		var notFound *types.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &notFound) {
			return "", fmt.Errorf("authenticate %s: %w", email, ErrNotAuthorized)
		}
		return "", fmt.Errorf("authenticate %s: %w", email, err)
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", fmt.Errorf("authenticate %s: empty authentication result", email)
	}
	return *out.AuthenticationResult.IdToken, nil
}
