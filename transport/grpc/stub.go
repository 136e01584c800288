package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "tram.v1.RemoteData"

// Full method names for the tram.v1.RemoteData service.
const (
	methodGetByID = "/" + ServiceName + "/GetByID"
	methodGetAll  = "/" + ServiceName + "/GetAll"
	methodSave    = "/" + ServiceName + "/Save"
	methodDelete  = "/" + ServiceName + "/Delete"
	methodExists  = "/" + ServiceName + "/Exists"
	methodCount   = "/" + ServiceName + "/Count"
)

// RemoteDataClient is the client stub for the tram.v1.RemoteData service.
type RemoteDataClient interface {
	GetByID(ctx context.Context, in *GetByIDRequest, opts ...gogrpc.CallOption) (*EntityResponse, error)
	GetAll(ctx context.Context, in *GetAllRequest, opts ...gogrpc.CallOption) (*EntityListResponse, error)
	Save(ctx context.Context, in *SaveRequest, opts ...gogrpc.CallOption) (*EntityResponse, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...gogrpc.CallOption) (*DeleteResponse, error)
	Exists(ctx context.Context, in *ExistsRequest, opts ...gogrpc.CallOption) (*ExistsResponse, error)
	Count(ctx context.Context, in *CountRequest, opts ...gogrpc.CallOption) (*CountResponse, error)
}

type remoteDataClient struct {
	cc gogrpc.ClientConnInterface
}

// NewRemoteDataClient creates a client stub over the given connection.
func NewRemoteDataClient(cc gogrpc.ClientConnInterface) RemoteDataClient {
	return &remoteDataClient{cc: cc}
}

func (c *remoteDataClient) GetByID(ctx context.Context, in *GetByIDRequest, opts ...gogrpc.CallOption) (*EntityResponse, error) {
	out := new(EntityResponse)
	if err := c.cc.Invoke(ctx, methodGetByID, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteDataClient) GetAll(ctx context.Context, in *GetAllRequest, opts ...gogrpc.CallOption) (*EntityListResponse, error) {
	out := new(EntityListResponse)
	if err := c.cc.Invoke(ctx, methodGetAll, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteDataClient) Save(ctx context.Context, in *SaveRequest, opts ...gogrpc.CallOption) (*EntityResponse, error) {
	out := new(EntityResponse)
	if err := c.cc.Invoke(ctx, methodSave, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteDataClient) Delete(ctx context.Context, in *DeleteRequest, opts ...gogrpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, methodDelete, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteDataClient) Exists(ctx context.Context, in *ExistsRequest, opts ...gogrpc.CallOption) (*ExistsResponse, error) {
	out := new(ExistsResponse)
	if err := c.cc.Invoke(ctx, methodExists, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteDataClient) Count(ctx context.Context, in *CountRequest, opts ...gogrpc.CallOption) (*CountResponse, error) {
	out := new(CountResponse)
	if err := c.cc.Invoke(ctx, methodCount, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoteDataServer is the server contract for the tram.v1.RemoteData
// service. Real backends (and in-process test servers) implement this and
// register with RegisterRemoteDataServer.
type RemoteDataServer interface {
	GetByID(ctx context.Context, in *GetByIDRequest) (*EntityResponse, error)
	GetAll(ctx context.Context, in *GetAllRequest) (*EntityListResponse, error)
	Save(ctx context.Context, in *SaveRequest) (*EntityResponse, error)
	Delete(ctx context.Context, in *DeleteRequest) (*DeleteResponse, error)
	Exists(ctx context.Context, in *ExistsRequest) (*ExistsResponse, error)
	Count(ctx context.Context, in *CountRequest) (*CountResponse, error)
}

// RegisterRemoteDataServer registers srv on the given registrar.
func RegisterRemoteDataServer(s gogrpc.ServiceRegistrar, srv RemoteDataServer) {
	s.RegisterService(&remoteDataServiceDesc, srv)
}

func getByIDHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(GetByIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).GetByID(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodGetByID}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).GetByID(ctx, req.(*GetByIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getAllHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).GetAll(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodGetAll}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).GetAll(ctx, req.(*GetAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func saveHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).Save(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodSave}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).Save(ctx, req.(*SaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).Delete(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodDelete}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).Delete(ctx, req.(*DeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func existsHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(ExistsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).Exists(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodExists}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).Exists(ctx, req.(*ExistsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func countHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(CountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteDataServer).Count(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: methodCount}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteDataServer).Count(ctx, req.(*CountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// remoteDataServiceDesc describes the tram.v1.RemoteData service:
// six unary methods, no streams.
var remoteDataServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemoteDataServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "GetByID", Handler: getByIDHandler},
		{MethodName: "GetAll", Handler: getAllHandler},
		{MethodName: "Save", Handler: saveHandler},
		{MethodName: "Delete", Handler: deleteHandler},
		{MethodName: "Exists", Handler: existsHandler},
		{MethodName: "Count", Handler: countHandler},
	},
	Streams: []gogrpc.StreamDesc{},
}
