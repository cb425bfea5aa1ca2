package dungeons

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testDungeon() (*dungeon.Dungeon, []*dungeon.Room) {
	d := &dungeon.Dungeon{
		ID:          "dungeon-1",
		CharacterID: "char-1",
		Name:        dungeon.DefaultName(1),
		Level:       1,
		Difficulty:  1,
		Width:       2,
		Height:      2,
		ExitX:       1,
		ExitY:       1,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	rooms := []*dungeon.Room{
		{DungeonID: d.ID, X: 0, Y: 0, Type: dungeon.RoomTypeEntrance, SouthWall: true, EastWall: true},
		{DungeonID: d.ID, X: 1, Y: 0, Type: dungeon.RoomTypeEmpty, NorthWall: true, EastWall: true},
		{DungeonID: d.ID, X: 0, Y: 1, Type: dungeon.RoomTypeEmpty, NorthWall: true, WestWall: true},
		{DungeonID: d.ID, X: 1, Y: 1, Type: dungeon.RoomTypeExit, SouthWall: true, WestWall: true},
	}
	return d, rooms
}

func (s *RedisRepoTestSuite) TestCreateWithRooms() {
	ctx := context.Background()
	d, rooms := s.testDungeon()

	dungeonData, err := json.Marshal(d)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("dungeon:dungeon-1", dungeonData, 0).SetVal("OK")
	for _, room := range rooms {
		roomData, marshalErr := json.Marshal(room)
		s.Require().NoError(marshalErr)
		s.mock.ExpectSet(roomKey(d.ID, room.X, room.Y), roomData, 0).SetVal("OK")
	}
	s.mock.ExpectZAdd("character:char-1:level:1:dungeons", redis.Z{
		Score:  float64(d.CreatedAt.UnixMicro()),
		Member: d.ID,
	}).SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.CreateWithRooms(ctx, d, rooms))
}

func (s *RedisRepoTestSuite) TestCreateWithRooms_PersistenceFailure() {
	ctx := context.Background()
	d, rooms := s.testDungeon()

	dungeonData, err := json.Marshal(d)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("dungeon:dungeon-1", dungeonData, 0).SetErr(errors.New("redis down"))

	err = s.repo.CreateWithRooms(ctx, d, rooms)
	s.Error(err)
	s.True(apperrors.IsInternal(err))
}

func (s *RedisRepoTestSuite) TestCreateWithRooms_RejectsBadRoomSet() {
	ctx := context.Background()
	d, rooms := s.testDungeon()

	// Duplicate coordinate; no redis traffic expected
	rooms[1] = rooms[0]
	err := s.repo.CreateWithRooms(ctx, d, rooms)
	s.True(apperrors.IsValidation(err))

	// Out of bounds
	d2, rooms2 := s.testDungeon()
	rooms2[3].X = 5
	err = s.repo.CreateWithRooms(ctx, d2, rooms2)
	s.True(apperrors.IsValidation(err))
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("dungeon:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetRoom() {
	room := &dungeon.Room{DungeonID: "dungeon-1", X: 1, Y: 0, Type: dungeon.RoomTypeCombat, NorthWall: true}
	data, err := json.Marshal(room)
	s.Require().NoError(err)

	s.mock.ExpectGet("dungeon:dungeon-1:room:1:0").SetVal(string(data))

	got, err := s.repo.GetRoom(context.Background(), "dungeon-1", 1, 0)
	s.Require().NoError(err)
	s.Equal(dungeon.RoomTypeCombat, got.Type)
	s.True(got.NorthWall)
}

func (s *RedisRepoTestSuite) TestMarkVisited() {
	room := &dungeon.Room{DungeonID: "dungeon-1", X: 0, Y: 1}
	data, err := json.Marshal(room)
	s.Require().NoError(err)

	visited := *room
	visited.Explored = true
	visited.Visible = true
	visitedData, err := json.Marshal(&visited)
	s.Require().NoError(err)

	s.mock.ExpectGet("dungeon:dungeon-1:room:0:1").SetVal(string(data))
	s.mock.ExpectSet("dungeon:dungeon-1:room:0:1", visitedData, 0).SetVal("OK")

	s.NoError(s.repo.MarkVisited(context.Background(), "dungeon-1", 0, 1))
}

func (s *RedisRepoTestSuite) TestFindByCharacterAndLevel() {
	d, _ := s.testDungeon()
	data, err := json.Marshal(d)
	s.Require().NoError(err)

	s.mock.ExpectZRevRange("character:char-1:level:1:dungeons", 0, 0).SetVal([]string{"dungeon-1"})
	s.mock.ExpectGet("dungeon:dungeon-1").SetVal(string(data))

	got, err := s.repo.FindByCharacterAndLevel(context.Background(), "char-1", 1)
	s.Require().NoError(err)
	s.Equal("dungeon-1", got.ID)
}

func (s *RedisRepoTestSuite) TestFindByCharacterAndLevel_Empty() {
	s.mock.ExpectZRevRange("character:char-1:level:3:dungeons", 0, 0).SetVal([]string{})

	_, err := s.repo.FindByCharacterAndLevel(context.Background(), "char-1", 3)
	s.True(apperrors.IsNotFound(err))
}
