package handler

// indexPage is the landing page shell; the %s slot receives either the
// recent-certificates list or the empty-state paragraph.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>AI Opener Certificates</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #1a1a2e; color: #fff; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
    .container { max-width: 600px; padding: 40px; text-align: center; }
    h1 { color: #e2b857; margin-bottom: 8px; font-size: 2rem; }
    p { color: rgba(255,255,255,0.6); margin-bottom: 32px; }
    ul { list-style: none; text-align: left; }
    li { padding: 12px 0; border-bottom: 1px solid rgba(255,255,255,0.1); }
    a { color: #e2b857; text-decoration: none; }
    a:hover { text-decoration: underline; }
    .empty { color: rgba(255,255,255,0.4); font-style: italic; }
  </style>
</head>
<body>
  <div class="container">
    <h1>AI Opener Certificates</h1>
    <p>Recent certificates</p>
    %s
  </div>
</body>
</html>`

// notFoundPage is returned for unknown certificate ids on the page route.
const notFoundPage = `<!DOCTYPE html>
<html><head><title>Not Found</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;background:#1a1a2e;color:#fff;">
<div style="text-align:center"><h1>Certificate Not Found</h1><p><a href="/" style="color:#e2b857">Back to home</a></p></div>
</body></html>`
