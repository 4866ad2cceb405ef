// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/models"
	"google.golang.org/grpc"
)

const serviceName = "winecellar.v1.WineCatalog"

// Full method names of the WineCatalog service.
const (
	WineCatalogGetWineMethod    = "/" + serviceName + "/GetWine"
	WineCatalogListWinesMethod  = "/" + serviceName + "/ListWines"
	WineCatalogCreateWineMethod = "/" + serviceName + "/CreateWine"
	WineCatalogUpdateWineMethod = "/" + serviceName + "/UpdateWine"
	WineCatalogDeleteWineMethod = "/" + serviceName + "/DeleteWine"
)

// WineCatalogServer is the server API of the WineCatalog service.
type WineCatalogServer interface {
	GetWine(context.Context, *GetWineRequest) (*models.Wine, error)
	ListWines(context.Context, *ListWinesRequest) (*models.PageResult[models.Wine], error)
	CreateWine(context.Context, *CreateWineRequest) (*models.Wine, error)
	UpdateWine(context.Context, *UpdateWineRequest) (*models.Wine, error)
	DeleteWine(context.Context, *DeleteWineRequest) (*DeleteWineResponse, error)
}

// RegisterWineCatalogServer registers srv on s.
func RegisterWineCatalogServer(s grpc.ServiceRegistrar, srv WineCatalogServer) {
	s.RegisterService(&wineCatalogServiceDesc, srv)
}

var wineCatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*WineCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetWine", Handler: getWineHandler},
		{MethodName: "ListWines", Handler: listWinesHandler},
		{MethodName: "CreateWine", Handler: createWineHandler},
		{MethodName: "UpdateWine", Handler: updateWineHandler},
		{MethodName: "DeleteWine", Handler: deleteWineHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "winecellar/v1/wine_catalog",
}

// unaryHandler decodes the request into a fresh Req and runs call through
// the interceptor chain.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(WineCatalogServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WineCatalogServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(WineCatalogServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	getWineHandler = unaryHandler(WineCatalogGetWineMethod,
		func(s WineCatalogServer, ctx context.Context, in *GetWineRequest) (*models.Wine, error) {
			return s.GetWine(ctx, in)
		})
	listWinesHandler = unaryHandler(WineCatalogListWinesMethod,
		func(s WineCatalogServer, ctx context.Context, in *ListWinesRequest) (*models.PageResult[models.Wine], error) {
			return s.ListWines(ctx, in)
		})
	createWineHandler = unaryHandler(WineCatalogCreateWineMethod,
		func(s WineCatalogServer, ctx context.Context, in *CreateWineRequest) (*models.Wine, error) {
			return s.CreateWine(ctx, in)
		})
	updateWineHandler = unaryHandler(WineCatalogUpdateWineMethod,
		func(s WineCatalogServer, ctx context.Context, in *UpdateWineRequest) (*models.Wine, error) {
			return s.UpdateWine(ctx, in)
		})
	deleteWineHandler = unaryHandler(WineCatalogDeleteWineMethod,
		func(s WineCatalogServer, ctx context.Context, in *DeleteWineRequest) (*DeleteWineResponse, error) {
			return s.DeleteWine(ctx, in)
		})
)

// WineCatalogClient is the client API of the WineCatalog service. Calls use
// the JSON codec.
type WineCatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewWineCatalogClient(cc grpc.ClientConnInterface) *WineCatalogClient {
	return &WineCatalogClient{cc: cc}
}

func (c *WineCatalogClient) GetWine(ctx context.Context, in *GetWineRequest, opts ...grpc.CallOption) (*models.Wine, error) {
	return invoke[models.Wine](ctx, c.cc, WineCatalogGetWineMethod, in, opts)
}

func (c *WineCatalogClient) ListWines(ctx context.Context, in *ListWinesRequest, opts ...grpc.CallOption) (*models.PageResult[models.Wine], error) {
	return invoke[models.PageResult[models.Wine]](ctx, c.cc, WineCatalogListWinesMethod, in, opts)
}

func (c *WineCatalogClient) CreateWine(ctx context.Context, in *CreateWineRequest, opts ...grpc.CallOption) (*models.Wine, error) {
	return invoke[models.Wine](ctx, c.cc, WineCatalogCreateWineMethod, in, opts)
}

func (c *WineCatalogClient) UpdateWine(ctx context.Context, in *UpdateWineRequest, opts ...grpc.CallOption) (*models.Wine, error) {
	return invoke[models.Wine](ctx, c.cc, WineCatalogUpdateWineMethod, in, opts)
}

func (c *WineCatalogClient) DeleteWine(ctx context.Context, in *DeleteWineRequest, opts ...grpc.CallOption) (*DeleteWineResponse, error) {
	return invoke[DeleteWineResponse](ctx, c.cc, WineCatalogDeleteWineMethod, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
