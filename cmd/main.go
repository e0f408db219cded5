package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/CamPlume1/BattleShipServer/api"
	"github.com/CamPlume1/BattleShipServer/db"
	"github.com/CamPlume1/BattleShipServer/db/sqlc"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	portEnv := os.Getenv("PORT")
	if _, err := strconv.Atoi(portEnv); err != nil {
		panic(err)
	}

	opts := []api.Option{
		api.WithPort(portEnv),
		api.WithStage(stage),
	}

	// the server runs fine without a database, it just keeps no
	// match analytics then
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		opts = append(opts, api.WithQuerier(sqlc.New(db.MustConnectToDb(psqlUrl))))
	}

	if heightEnv := os.Getenv("GRID_HEIGHT"); heightEnv != "" {
		height, err := strconv.Atoi(heightEnv)
		if err != nil {
			panic(err)
		}
		width, err := strconv.Atoi(os.Getenv("GRID_WIDTH"))
		if err != nil {
			panic(err)
		}
		opts = append(opts, api.WithGridSize(height, width))
	}

	server := api.NewServer(opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("/battleship", server.HandleWs)

	log.Printf("Listening to port %s\n", server.Port())
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+server.Port(), mux))
}
