// Package viz exposes the search engine over a small REST API so a
// front-end can build mazes, run searches, and replay the explored order
// step by step.
//
// What:
//
//   - Store: in-memory, uuid-keyed registry of environments. Environments
//     are immutable once built, so the store hands out shared pointers
//     under an RWMutex and searches run without copying.
//   - MazeController: gin controller wiring the maze and history routes
//     under /api/v1.
//   - Router: owns the gin engine, groups controllers under a base URL,
//     and runs the HTTP server.
//
// Routes:
//
//	POST   /api/v1/mazes             build and register an environment
//	GET    /api/v1/mazes/:id         fetch a registered environment
//	POST   /api/v1/mazes/:id/search  run one search against it
//	GET    /api/v1/history           load the benchmark history log
//	DELETE /api/v1/history           clear it
//
// Search responses always include the explored order, in expansion
// sequence, which is what an animation consumes.
package viz
