package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func entryToPB(e *models.Entry) *pb.Entry {
	return &pb.Entry{
		Id:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		AiInsight: e.AIInsight,
		CreatedAt: timestamppb.New(e.CreatedAt),
		UpdatedAt: timestamppb.New(e.UpdatedAt),
	}
}

func requireID(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	return nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, _ *emptypb.Empty) (*pb.ListEntriesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListEntriesResponse{Entries: make([]*pb.Entry, 0, len(list))}
	for i := range list {
		resp.Entries = append(resp.Entries, entryToPB(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) GetEntry(ctx context.Context, req *pb.GetEntryRequest) (*pb.Entry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Id); err != nil {
		return nil, err
	}

	e, err := s.entries.Get(ctx, userID, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return entryToPB(e), nil
}

func (s *GRPCServer) CreateEntry(ctx context.Context, req *pb.CreateEntryRequest) (*pb.Entry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.entries.Create(ctx, userID, req.Title, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Entry created", "user_id", userID, "entry_id", e.ID)
	return entryToPB(e), nil
}

func (s *GRPCServer) UpdateEntry(ctx context.Context, req *pb.UpdateEntryRequest) (*pb.Entry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Id); err != nil {
		return nil, err
	}

	e, err := s.entries.Update(ctx, userID, req.Id, req.Title, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return entryToPB(e), nil
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *pb.DeleteEntryRequest) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Id); err != nil {
		return nil, err
	}

	if err := s.entries.Delete(ctx, userID, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Entry deleted", "user_id", userID, "entry_id", req.Id)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RequestInsight(ctx context.Context, req *pb.InsightRequest) (*pb.InsightResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Id); err != nil {
		return nil, err
	}

	insight, err := s.entries.GenerateInsight(ctx, userID, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.InsightResponse{Insight: insight}, nil
}

func (s *GRPCServer) RequestRecommendation(ctx context.Context, req *pb.RecommendationRequest) (*pb.InsightResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	text, err := s.entries.Recommend(ctx, userID, req.Title, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.InsightResponse{Insight: text}, nil
}

func (s *GRPCServer) AdvisorStatus(ctx context.Context, _ *emptypb.Empty) (*pb.AdvisorStatusResponse, error) {
	st := s.entries.AdvisorStatus(ctx)
	return &pb.AdvisorStatusResponse{
		Available:      st.Available,
		ModelAvailable: st.ModelAvailable,
		Model:          st.Model,
		Models:         st.Models,
		Error:          st.Error,
	}, nil
}
