package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ragchat/app/agent"
	"ragchat/app/api"
	"ragchat/index"
	"ragchat/ingest"
	"ragchat/model"
	"ragchat/splitter"
	"ragchat/store"
	"ragchat/types"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	listenAddr string
	logger     *slog.Logger
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	cfg := loadConfig()

	vectorStore, err := newVectorStore(cfg)
	if err != nil {
		log.Fatal("error to connect to vector store: ", err)
		return
	}

	var (
		embedder = model.NewOllamaEmbedder(os.Getenv("OLLAMA_EMBEDDING_URL"), os.Getenv("OLLAMA_EMBEDDING_MODEL"))
		llm      = model.NewOllamaGenerator(os.Getenv("LLM_URL"), os.Getenv("LLM_MODEL"))
		ix       = index.New(embedder, vectorStore)
		split    = splitter.New(cfg.ChunkSize, cfg.ChunkOverlap)

		app           = fiber.New(config)
		checkHandler  = api.NewCheckHandler()
		chatHandler   = api.NewChatHandler(agent.New(ix, llm))
		ingestHandler = api.NewIngestHandler(ingest.New(ix, split), cfg.UploadDir)
		statusHandler = api.NewStatusHandler(ix)
	)

	app.Get("/check/healthy", checkHandler.HandleHealthy)
	app.Post("/chat", chatHandler.HandleChat)
	app.Post("/upload", ingestHandler.HandleUpload)
	app.Post("/index-text", ingestHandler.HandleIndexText)
	app.Post("/index-website", ingestHandler.HandleIndexWebsite)
	app.Get("/status", statusHandler.HandleStatus)

	if err := app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}

func loadConfig() types.Config {
	chunkSize, _ := strconv.Atoi(os.Getenv("CHUNK_SIZE"))
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	chunkOverlap, _ := strconv.Atoi(os.Getenv("CHUNK_OVERLAP"))
	if chunkOverlap <= 0 {
		chunkOverlap = 200
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return types.Config{
		StoreBackend: os.Getenv("STORE_BACKEND"),
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
		UploadDir:    uploadDir,
	}
}

func newVectorStore(cfg types.Config) (store.VectorStore, error) {
	if cfg.StoreBackend == "memory" {
		return store.NewMemoryStore(), nil
	}
	port, _ := strconv.Atoi(os.Getenv("PG_PORT"))
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", os.Getenv("PG_HOST"), port, os.Getenv("PG_USER"), os.Getenv("PG_PASS"), os.Getenv("PG_DB_NAME"))
	return store.NewPostgresStore(context.Background(), connStr)
}
