// Package extension serves the suffiks extension gRPC contract on top of the ingress reconciler
package extension

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/controllers/ingress"
	"github.com/suffiks/ingress-extension/docs"
	"github.com/suffiks/ingress-extension/model"
	pb "github.com/suffiks/ingress-extension/pkg/grpc/extension"
)

const deleteNotImplemented = "Delete not implemented"

// Handler implements the extension service
type Handler struct {
	pb.UnimplementedExtensionServer

	ingress.Reconciler
}

var _ = pb.ExtensionServer(new(Handler))

// NewHandler creates a handler that applies Sync requests with the reconciler
func NewHandler(r ingress.Reconciler) *Handler {
	return &Handler{Reconciler: r}
}

// Sync creates or updates the owner's Ingress.
// No messages are streamed back, the outcome is conveyed by the status code.
func (h *Handler) Sync(req *pb.SyncRequest, stream pb.Extension_SyncServer) error {
	ctx := stream.Context()

	owner, err := ownerFromProto(req.GetOwner())
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	op, err := h.Reconcile(ctx, owner, req.GetSpec())
	if err != nil {
		return syncStatus(err)
	}
	log.FromContext(ctx).V(1).Info("sync", "owner", owner.String(), "operation", op)
	return nil
}

// Delete is acknowledged without action, the Ingress is garbage collected with its owner
func (h *Handler) Delete(req *pb.SyncRequest, stream pb.Extension_DeleteServer) error {
	log.FromContext(stream.Context()).Info(deleteNotImplemented,
		"owner", fmt.Sprintf("%s/%s", req.GetOwner().GetNamespace(), req.GetOwner().GetName()))
	stream.SetTrailer(metadata.Pairs("message", deleteNotImplemented))
	return nil
}

// Default has no defaults to contribute
func (h *Handler) Default(context.Context, *pb.SyncRequest) (*pb.DefaultResponse, error) {
	return &pb.DefaultResponse{}, nil
}

// Validate reports spec fields that would be rejected by Sync
func (h *Handler) Validate(_ context.Context, req *pb.ValidationRequest) (*pb.ValidationResponse, error) {
	if req.GetType() == pb.ValidationType_VALIDATION_TYPE_DELETE {
		return &pb.ValidationResponse{}, nil
	}

	if _, err := ingress.Decode(req.GetSpec()); err != nil {
		var decodeErr *ingress.DecodeError
		if !errors.As(err, &decodeErr) {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &pb.ValidationResponse{Errors: validationErrors(decodeErr)}, nil
	}
	return &pb.ValidationResponse{}, nil
}

// Documentation returns markdown pages describing the ingress spec
func (h *Handler) Documentation(context.Context, *pb.DocumentationRequest) (*pb.DocumentationResponse, error) {
	pages, err := docs.Pages()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "documentation: %v", err)
	}
	return &pb.DocumentationResponse{Pages: pages}, nil
}

func ownerFromProto(o *pb.Owner) (model.Owner, error) {
	if o == nil {
		return model.Owner{}, errors.New("owner is required")
	}
	if o.GetName() == "" || o.GetNamespace() == "" {
		return model.Owner{}, errors.New("owner name and namespace are required")
	}
	return model.Owner{
		APIVersion: o.GetApiVersion(),
		Kind:       o.GetKind(),
		Name:       o.GetName(),
		Namespace:  o.GetNamespace(),
		UID:        types.UID(o.GetUid()),
	}, nil
}

func syncStatus(err error) error {
	var decodeErr *ingress.DecodeError
	var storeErr *ingress.StoreError
	switch {
	case errors.As(err, &decodeErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &storeErr):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func validationErrors(err *ingress.DecodeError) []*pb.ValidationError {
	fields := err.FieldErrors()
	if len(fields) == 0 {
		return []*pb.ValidationError{{
			Path:   "ingress",
			Detail: err.Err.Error(),
		}}
	}
	return lo.Map(fields, func(fe validator.FieldError, _ int) *pb.ValidationError {
		return &pb.ValidationError{
			Path:   ingress.FieldPath(fe),
			Detail: ingress.Describe(fe),
			Value:  fmt.Sprint(fe.Value()),
		}
	})
}
