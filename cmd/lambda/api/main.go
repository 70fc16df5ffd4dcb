package main

import (
	"context"
	"crypto/subtle"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"traceability-api/internal/config"
	"traceability-api/internal/handlers"
	"traceability-api/internal/middleware"
	"traceability-api/pkg/lambda"
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// authorized checks the shared function key for endpoints that require it.
// The key may arrive in the X-Functions-Key header or the "code" query
// parameter; an empty configured key disables the check.
func authorized(req *lambda.Request, key string) bool {
	if key == "" {
		return true
	}
	presented := req.Header(middleware.FunctionKeyHeader)
	if presented == "" {
		presented = req.QueryParams["code"]
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(key)) == 1
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	authHandler := handlers.NewAuthHandler(container.Services.Auth)
	statusHandler := handlers.NewStatusHandler(container.Services.Status)
	gitterHandler := handlers.NewGitterHandler(container.Services.Gitter)
	forgingHandler := handlers.NewForgingHandler(container.Services.Forging)
	protocolHandler := handlers.NewProtocolHandler(container.Services.Protocol)

	var resp *lambda.Response

	switch {
	// Anonymous read endpoints
	case req.Method == "GET" && req.Path == "/readstatus":
		resp = statusHandler.HandleReadStatus(ctx, req)
	case req.Method == "GET" && req.Path == "/InfoStatus":
		resp = statusHandler.HandleInfoStatus(ctx, req)
	case req.Method == "GET" && req.Path == "/GetInfoGitter":
		resp = gitterHandler.HandleGetInfoGitter(ctx, req)

	// Function-key protected endpoints
	case (req.Method == "GET" || req.Method == "POST") && req.Path == "/authenticatecard":
		if !authorized(req, container.Config.FunctionKey) {
			resp = lambda.JSON(401, handlers.ErrorResponse{Error: "Unauthorized"})
			break
		}
		resp = authHandler.HandleAuthenticateCard(ctx, req)
	case req.Method == "POST" && req.Path == "/ChangeStatus":
		if !authorized(req, container.Config.FunctionKey) {
			resp = lambda.JSON(401, handlers.ErrorResponse{Error: "Unauthorized"})
			break
		}
		resp = statusHandler.HandleChangeStatus(ctx, req)
	case req.Method == "POST" && req.Path == "/KovaciLinkaCheck":
		if !authorized(req, container.Config.FunctionKey) {
			resp = lambda.JSON(401, handlers.ErrorResponse{Error: "Unauthorized"})
			break
		}
		resp = forgingHandler.HandleCheck(ctx, req)
	case req.Method == "POST" && req.Path == "/KovaciLinkaScan":
		if !authorized(req, container.Config.FunctionKey) {
			resp = lambda.JSON(401, handlers.ErrorResponse{Error: "Unauthorized"})
			break
		}
		resp = forgingHandler.HandleScan(ctx, req)
	case req.Method == "POST" && req.Path == "/ProtocolPartInsert":
		if !authorized(req, container.Config.FunctionKey) {
			resp = lambda.JSON(401, handlers.ErrorResponse{Error: "Unauthorized"})
			break
		}
		resp = protocolHandler.HandleInsert(ctx, req)

	default:
		resp = &lambda.Response{
			StatusCode: 404,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Not found"}`),
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
